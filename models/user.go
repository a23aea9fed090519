// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a credential record known to the service.
// PasswordHash is a bcrypt hash; the plaintext password never leaves the
// login request.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Credentials is the username/password pair submitted to POST /token.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
