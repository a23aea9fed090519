// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/models"
)

// employeeRepository is the SQL implementation of [EmployeeRepository] for
// both PostgreSQL and SQLite. Dialect differences are carried by the
// embedded [*DB]: the placeholder format of its statement builder and its
// error classifier.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// the request's trace id.
type employeeRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating employee repository")
	return &employeeRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts a new employee row.
//
// Error handling:
//   - unique violation on employee_id → [ErrEmployeeAlreadyExists]
//   - NOT NULL / CHECK / type violation → [ErrEmployeeSchemaViolation]
//   - anything else → wrapped [ErrExecutingStatement]
func (r *employeeRepository) Create(ctx context.Context, employee models.Employee) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeQuery(r.builder, employee)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.Create").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "employeeRepository.Create").
			Str("employee_id", employee.EmployeeID).
			Msg("failed to insert employee")
		return r.classify(err)
	}

	return nil
}

func (r *employeeRepository) Exists(ctx context.Context, employeeID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsEmployeeQuery(r.builder, employeeID)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.Exists").Msg("failed to create query")
		return false, err
	}

	var one int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).
			Str("func", "employeeRepository.Exists").
			Str("employee_id", employeeID).
			Msg("failed to check employee existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// FindByID returns the employee or [ErrEmployeeNotFound].
func (r *employeeRepository) FindByID(ctx context.Context, employeeID string) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeeByIDQuery(r.builder, employeeID)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.FindByID").Msg("failed to create query")
		return models.Employee{}, err
	}

	employee, err := scanEmployee(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Employee{}, ErrEmployeeNotFound
	case err != nil:
		log.Err(err).
			Str("func", "employeeRepository.FindByID").
			Str("employee_id", employeeID).
			Msg("failed to get employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employee, nil
}

func (r *employeeRepository) FindBySkill(ctx context.Context, skill string) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesBySkillQuery(r.builder, r.driver, skill)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.FindBySkill").Msg("failed to create query")
		return nil, err
	}

	employees, err := r.queryEmployees(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "employeeRepository.FindBySkill").
			Str("skill", skill).
			Msg("failed to search employees by skill")
		return nil, err
	}

	return employees, nil
}

func (r *employeeRepository) FindByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesByDepartmentQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.FindByDepartment").Msg("failed to create query")
		return nil, err
	}

	employees, err := r.queryEmployees(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "employeeRepository.FindByDepartment").
			Str("department", filter.Department).
			Int64("skip", filter.Offset).
			Int64("limit", filter.Limit).
			Msg("failed to list employees of department")
		return nil, err
	}

	return employees, nil
}

// Update applies a partial update in a single statement. Zero affected rows
// means the employee does not exist.
func (r *employeeRepository) Update(ctx context.Context, employeeID string, update models.EmployeeUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmployeeQuery(r.builder, employeeID, update)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "employeeRepository.Update").
			Str("employee_id", employeeID).
			Msg("failed to update employee")
		return r.classify(err)
	}

	return r.expectAffected(ctx, result, "employeeRepository.Update", employeeID)
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEmployeeQuery(r.builder, employeeID)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "employeeRepository.Delete").
			Str("employee_id", employeeID).
			Msg("failed to delete employee")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.expectAffected(ctx, result, "employeeRepository.Delete", employeeID)
}

// AverageSalaryByDepartment returns one entry per distinct department. An
// empty table yields an empty, non-nil slice.
func (r *employeeRepository) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAverageSalaryQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.AverageSalaryByDepartment").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "employeeRepository.AverageSalaryByDepartment").
			Msg("failed to execute average salary query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.DepartmentSalary, 0)
	for rows.Next() {
		var item models.DepartmentSalary
		if err = rows.Scan(&item.Department, &item.AvgSalary); err != nil {
			log.Err(err).
				Str("func", "employeeRepository.AverageSalaryByDepartment").
				Msg("failed to scan average salary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "employeeRepository.AverageSalaryByDepartment").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

func (r *employeeRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "employeeRepository.Ping").Msg("database is unreachable")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// queryEmployees runs a SELECT over [employeeColumns] and scans every row.
// An empty result is an empty, non-nil slice.
func (r *employeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]models.Employee, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// classify maps a failed INSERT/UPDATE to a domain error using the dialect's
// error classifier.
func (r *employeeRepository) classify(err error) error {
	switch r.errorClassificator.Classify(err) {
	case UniqueViolation:
		return ErrEmployeeAlreadyExists
	case SchemaViolation:
		return fmt.Errorf("%w: %w", ErrEmployeeSchemaViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *employeeRepository) expectAffected(ctx context.Context, result sql.Result, funcName, employeeID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Str("employee_id", employeeID).
			Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.EmployeeID,
		&employee.Name,
		&employee.Department,
		&employee.Salary,
		&employee.JoiningDate,
		&employee.Skills,
	)
	return employee, err
}
