// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/models"
)

const employeesTable = "employees"

// employeeColumns is the public projection of a row; the internal id column
// is never selected.
var employeeColumns = []string{
	"employee_id",
	"name",
	"department",
	"salary",
	"joining_date",
	"skills",
}

// skill containment differs per dialect: PostgreSQL checks JSONB
// containment, SQLite walks the JSON array with json_each.
const (
	postgresSkillPredicate = "skills @> jsonb_build_array(?::text)"
	sqliteSkillPredicate   = "EXISTS (SELECT 1 FROM json_each(employees.skills) WHERE json_each.value = ?)"
)

func buildInsertEmployeeQuery(b sq.StatementBuilderType, employee models.Employee) (string, []any, error) {
	query, args, err := b.
		Insert(employeesTable).
		Columns(employeeColumns...).
		Values(
			employee.EmployeeID,
			employee.Name,
			employee.Department,
			employee.Salary,
			employee.JoiningDate,
			employee.Skills,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildExistsEmployeeQuery(b sq.StatementBuilderType, employeeID string) (string, []any, error) {
	query, args, err := b.
		Select("1").
		From(employeesTable).
		Where(sq.Eq{"employee_id": employeeID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectEmployeeByIDQuery(b sq.StatementBuilderType, employeeID string) (string, []any, error) {
	query, args, err := b.
		Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectEmployeesBySkillQuery(b sq.StatementBuilderType, driver, skill string) (string, []any, error) {
	predicate := postgresSkillPredicate
	if driver == config.DriverSQLite {
		predicate = sqliteSkillPredicate
	}

	query, args, err := b.
		Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Expr(predicate, skill)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectEmployeesByDepartmentQuery orders by joining_date descending;
// the row id breaks ties so that pages never overlap.
func buildSelectEmployeesByDepartmentQuery(b sq.StatementBuilderType, filter models.DepartmentFilter) (string, []any, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return "", nil, fmt.Errorf("%w: negative offset or limit", ErrBuildingSQLQuery)
	}

	query, args, err := b.
		Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"department": filter.Department}).
		OrderBy("joining_date DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateEmployeeQuery sets only the non-nil fields of update.
func buildUpdateEmployeeQuery(b sq.StatementBuilderType, employeeID string, update models.EmployeeUpdate) (string, []any, error) {
	setMap := make(map[string]any, 5)

	if update.Name != nil {
		setMap["name"] = *update.Name
	}
	if update.Department != nil {
		setMap["department"] = *update.Department
	}
	if update.Salary != nil {
		setMap["salary"] = *update.Salary
	}
	if update.JoiningDate != nil {
		setMap["joining_date"] = *update.JoiningDate
	}
	if update.Skills != nil {
		setMap["skills"] = models.Skills(*update.Skills)
	}

	if len(setMap) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := b.
		Update(employeesTable).
		SetMap(setMap).
		Where(sq.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteEmployeeQuery(b sq.StatementBuilderType, employeeID string) (string, []any, error) {
	query, args, err := b.
		Delete(employeesTable).
		Where(sq.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildAverageSalaryQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select("department", "AVG(salary) AS avg_salary").
		From(employeesTable).
		GroupBy("department").
		OrderBy("department").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
