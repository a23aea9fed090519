// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmployeeAlreadyExists is returned when an insert violates the unique
	// constraint on employee_id.
	ErrEmployeeAlreadyExists = errors.New("employee ID already exists")

	// ErrEmployeeNotFound is returned when a lookup, update or delete targets
	// an employee_id that does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeSchemaViolation is returned when the database rejects a row
	// because it does not satisfy the table schema (NOT NULL, CHECK, invalid
	// date or type).
	ErrEmployeeSchemaViolation = errors.New("employee violates storage schema")

	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUnsupportedDriver is returned when the configured storage driver is
	// neither postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan employee row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan employee rows")
)
