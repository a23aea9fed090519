// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a form body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form was passed")

	// ErrInvalidFieldType is returned when a JSON field has the wrong type.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrInvalidQueryParam is returned when a query parameter is missing or
	// has the wrong type.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
