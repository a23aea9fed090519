// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-employee-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EmployeeRepository persists employee records in the employees table.
//
// Implementations never expose the internal row identifier: records are
// addressed by their employee_id only.
type EmployeeRepository interface {
	// Create inserts a new employee. Returns [ErrEmployeeAlreadyExists] when
	// the employee_id is taken and [ErrEmployeeSchemaViolation] when the row
	// does not satisfy the table schema.
	Create(ctx context.Context, employee models.Employee) error

	// Exists reports whether an employee with the given id is stored.
	Exists(ctx context.Context, employeeID string) (bool, error)

	// FindByID returns the employee or [ErrEmployeeNotFound].
	FindByID(ctx context.Context, employeeID string) (models.Employee, error)

	// FindBySkill returns every employee whose skills contain skill exactly.
	FindBySkill(ctx context.Context, skill string) ([]models.Employee, error)

	// FindByDepartment returns one page of a department ordered by
	// joining_date, newest first.
	FindByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error)

	// Update changes only the supplied fields. Returns [ErrEmployeeNotFound]
	// when no row matched.
	Update(ctx context.Context, employeeID string, update models.EmployeeUpdate) error

	// Delete removes the employee or returns [ErrEmployeeNotFound].
	Delete(ctx context.Context, employeeID string) error

	// AverageSalaryByDepartment returns the mean salary of every department,
	// ordered by department name.
	AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error)

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
}

// UserRepository looks up the users allowed to log in.
type UserRepository interface {
	// FindUserByUsername returns the user or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ErrorClassificator maps a driver-specific error to an
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
