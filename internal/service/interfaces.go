// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-employee-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EmployeeServiceWrapper

// EmployeeService is the business layer between the HTTP API and the
// employee repository.
type EmployeeService interface {
	// CreateEmployee stores a new employee. Returns
	// store.ErrEmployeeAlreadyExists when the employee_id is taken.
	CreateEmployee(ctx context.Context, request models.EmployeeRequest) error

	GetEmployee(ctx context.Context, employeeID string) (models.Employee, error)
	SearchBySkill(ctx context.Context, filter models.SkillFilter) ([]models.Employee, error)
	ListByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error)

	// UpdateEmployee applies a partial update. Returns ErrNoFieldsToUpdate
	// for an empty update and store.ErrEmployeeNotFound for an unknown id.
	UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) error

	DeleteEmployee(ctx context.Context, employeeID string) error
	AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error)

	// Health reports whether the record store is reachable.
	Health(ctx context.Context) error
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EmployeeServiceWrapper defines middleware composition for EmployeeService.
// Implementations wrap an existing EmployeeService to add behavior such as
// validating.
type EmployeeServiceWrapper interface {
	Wrap(EmployeeService) EmployeeService // returns a decorated EmployeeService applying additional behavior
}
