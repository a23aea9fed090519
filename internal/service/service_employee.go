// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/store"
	"github.com/MKhiriev/go-employee-service/models"
)

// employeeService is the core EmployeeService. It assumes its input has
// already passed shape validation (see NewEmployeeValidationService) and
// only enforces the rules that need the repository.
type employeeService struct {
	employeeRepository store.EmployeeRepository

	logger *logger.Logger
}

func NewEmployeeService(employeeRepository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		employeeRepository: employeeRepository,
		logger:             logger,
	}
}

// CreateEmployee checks for an existing employee_id first; a concurrent
// insert that races past the check is still rejected by the unique
// constraint with the same store.ErrEmployeeAlreadyExists.
func (s *employeeService) CreateEmployee(ctx context.Context, request models.EmployeeRequest) error {
	log := logger.FromContext(ctx)
	employee := request.Employee()

	exists, err := s.employeeRepository.Exists(ctx, employee.EmployeeID)
	if err != nil {
		log.Err(err).Str("employee_id", employee.EmployeeID).Msg("employee existence check failed")
		return fmt.Errorf("employee existence check failed: %w", err)
	}
	if exists {
		log.Info().Str("employee_id", employee.EmployeeID).Msg("employee already exists")
		return store.ErrEmployeeAlreadyExists
	}

	if err = s.employeeRepository.Create(ctx, employee); err != nil {
		log.Err(err).Str("employee_id", employee.EmployeeID).Msg("employee creation ended with error")
		return fmt.Errorf("employee creation ended with error: %w", err)
	}

	log.Info().Str("employee_id", employee.EmployeeID).Msg("employee created")
	return nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	employee, err := s.employeeRepository.FindByID(ctx, employeeID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("error getting employee %q: %w", employeeID, err)
	}
	return employee, nil
}

func (s *employeeService) SearchBySkill(ctx context.Context, filter models.SkillFilter) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindBySkill(ctx, filter.Skill)
	if err != nil {
		return nil, fmt.Errorf("error searching employees by skill: %w", err)
	}
	return employees, nil
}

func (s *employeeService) ListByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error) {
	employees, err := s.employeeRepository.FindByDepartment(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing employees of department: %w", err)
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if err := s.employeeRepository.Update(ctx, employeeID, update); err != nil {
		log.Err(err).Str("employee_id", employeeID).Msg("employee update ended with error")
		return fmt.Errorf("employee update ended with error: %w", err)
	}

	log.Info().Str("employee_id", employeeID).Msg("employee updated")
	return nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	log := logger.FromContext(ctx)

	if err := s.employeeRepository.Delete(ctx, employeeID); err != nil {
		log.Err(err).Str("employee_id", employeeID).Msg("employee deletion ended with error")
		return fmt.Errorf("employee deletion ended with error: %w", err)
	}

	log.Info().Str("employee_id", employeeID).Msg("employee deleted")
	return nil
}

func (s *employeeService) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	averages, err := s.employeeRepository.AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, fmt.Errorf("error aggregating salaries: %w", err)
	}
	return averages, nil
}

func (s *employeeService) Health(ctx context.Context) error {
	return s.employeeRepository.Ping(ctx)
}
