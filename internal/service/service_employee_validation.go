// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-employee-service/internal/validators"
	"github.com/MKhiriev/go-employee-service/models"
)

// employeeValidationService validates request shapes before delegating to
// the wrapped EmployeeService. Every validation failure is returned as
// ErrInvalidDataProvided (or ErrNoFieldsToUpdate) wrapping the validator's
// error, so the message keeps the offending field names.
type employeeValidationService struct {
	inner     EmployeeService
	validator validators.Validator
}

func NewEmployeeValidationService() EmployeeServiceWrapper {
	return &employeeValidationService{
		validator: validators.NewEmployeeValidator(),
	}
}

func (v *employeeValidationService) CreateEmployee(ctx context.Context, request models.EmployeeRequest) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateEmployee(ctx, request)
}

func (v *employeeValidationService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	return v.inner.GetEmployee(ctx, employeeID)
}

func (v *employeeValidationService) SearchBySkill(ctx context.Context, filter models.SkillFilter) ([]models.Employee, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SearchBySkill(ctx, filter)
}

func (v *employeeValidationService) ListByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ListByDepartment(ctx, filter)
}

func (v *employeeValidationService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) error {
	err := v.validator.Validate(ctx, update)
	switch {
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return fmt.Errorf("%w: %w", ErrNoFieldsToUpdate, err)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateEmployee(ctx, employeeID, update)
}

func (v *employeeValidationService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return v.inner.DeleteEmployee(ctx, employeeID)
}

func (v *employeeValidationService) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	return v.inner.AverageSalaryByDepartment(ctx)
}

func (v *employeeValidationService) Health(ctx context.Context) error {
	return v.inner.Health(ctx)
}

func (v *employeeValidationService) Wrap(wrapped EmployeeService) EmployeeService {
	v.inner = wrapped
	return v
}
