// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the employee service HTTP API.
//
// The primary abstraction is [EmployeeAdapter], which decouples callers such
// as the command-line client from the underlying protocol. The package ships
// an HTTP/REST implementation ([NewHTTPEmployeeAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-employee-service/models"
)

// EmployeeAdapter defines communication with the employee service.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type EmployeeAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// CreateEmployee creates a new employee. Requires a token.
	CreateEmployee(ctx context.Context, request models.EmployeeRequest) error

	// GetEmployee fetches one employee by its identifier.
	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)

	// UpdateEmployee applies a partial update. Requires a token.
	UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) error

	// DeleteEmployee removes an employee. Requires a token.
	DeleteEmployee(ctx context.Context, employeeID string) error

	// ListByDepartment fetches one page of a department's employees.
	ListByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error)

	// SearchBySkill fetches all employees having the given skill.
	SearchBySkill(ctx context.Context, skill string) ([]models.Employee, error)

	// AverageSalaryByDepartment fetches the mean salary per department.
	AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error)

	// Health checks that the service and its storage are reachable.
	Health(ctx context.Context) error
}
