// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-layer message constants shared by the
// HTTP handlers and the API client.
//
// The Msg* constants are the human-readable strings written into response
// bodies. They are part of the API contract: the client recognises some of
// them to map responses back to typed errors.
package app

const (
	// MsgEmployeeNotFound is returned when a read, update, or delete targets
	// an employee ID that does not exist.
	MsgEmployeeNotFound = "Employee not found"

	// MsgEmployeeAlreadyExists is returned with HTTP 400 when a create request
	// reuses an existing employee ID.
	MsgEmployeeAlreadyExists = "Employee ID already exists"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgCouldNotValidateCredentials is returned when a bearer token is
	// expired, forged, or issued for an unknown user.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgIncorrectUsernameOrPassword is returned by POST /token for a wrong
	// username/password pair.
	MsgIncorrectUsernameOrPassword = "Incorrect username or password"

	// MsgStorageUnavailable is returned by GET /health when the record store
	// cannot be reached.
	MsgStorageUnavailable = "storage is unavailable"

	MsgEmployeeCreated = "Employee created successfully"
	MsgEmployeeUpdated = "Employee updated successfully"
	MsgEmployeeDeleted = "Employee deleted successfully"
)
