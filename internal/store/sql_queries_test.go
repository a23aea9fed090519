// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertEmployeeQuery(t *testing.T) {
	query, args, err := buildInsertEmployeeQuery(dollar, testEmployee())
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO employees (employee_id,name,department,salary,joining_date,skills) VALUES ($1,$2,$3,$4,$5,$6)",
		query)
	require.Len(t, args, 6)
	assert.Equal(t, "E1", args[0])
	assert.Equal(t, models.NewDate(2024, 1, 2), args[4])
	assert.Equal(t, models.Skills{"go", "sql"}, args[5])

	// the internal row id is never written by the application
	assert.NotContains(t, strings.ToLower(query), "(id,")
}

func Test_buildInsertEmployeeQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildInsertEmployeeQuery(question, testEmployee())
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES (?,?,?,?,?,?)")
	assert.NotContains(t, query, "$1")
}

func Test_buildSelectEmployeeByIDQuery(t *testing.T) {
	query, args, err := buildSelectEmployeeByIDQuery(dollar, "E1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT employee_id, name, department, salary, joining_date, skills FROM employees WHERE employee_id = $1", query)
	assert.Equal(t, []any{"E1"}, args)
}

func Test_buildSelectEmployeesBySkillQuery(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		driver    string
		wantWhere string
	}{
		{
			name:      "postgres jsonb containment",
			builder:   dollar,
			driver:    config.DriverPostgres,
			wantWhere: "WHERE skills @> jsonb_build_array($1::text)",
		},
		{
			name:      "sqlite json_each",
			builder:   question,
			driver:    config.DriverSQLite,
			wantWhere: "WHERE EXISTS (SELECT 1 FROM json_each(employees.skills) WHERE json_each.value = ?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectEmployeesBySkillQuery(tt.builder, tt.driver, "go")
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantWhere)
			assert.Equal(t, []any{"go"}, args)
		})
	}
}

func Test_buildSelectEmployeesByDepartmentQuery(t *testing.T) {
	tests := []struct {
		name    string
		filter  models.DepartmentFilter
		want    string
		wantErr bool
	}{
		{
			name:   "defaults",
			filter: models.DepartmentFilter{Department: "Eng", Offset: 0, Limit: 10},
			want:   "ORDER BY joining_date DESC, id DESC LIMIT 10 OFFSET 0",
		},
		{
			name:   "second page",
			filter: models.DepartmentFilter{Department: "Eng", Offset: 100, Limit: 100},
			want:   "LIMIT 100 OFFSET 100",
		},
		{
			name:    "negative offset",
			filter:  models.DepartmentFilter{Department: "Eng", Offset: -1, Limit: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectEmployeesByDepartmentQuery(dollar, tt.filter)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}
			require.NoError(t, err)

			assert.Contains(t, query, "WHERE department = $1")
			assert.Contains(t, query, tt.want)
			assert.Equal(t, []any{"Eng"}, args)
		})
	}
}

func Test_buildUpdateEmployeeQuery(t *testing.T) {
	date := models.NewDate(2025, 2, 3)

	tests := []struct {
		name     string
		update   models.EmployeeUpdate
		wantSet  string
		wantArgs []any
	}{
		{
			name:     "single field",
			update:   models.EmployeeUpdate{Salary: ptr(1.5)},
			wantSet:  "UPDATE employees SET salary = $1 WHERE employee_id = $2",
			wantArgs: []any{1.5, "E1"},
		},
		{
			name: "all fields in column order",
			update: models.EmployeeUpdate{
				Name:        ptr("Bob"),
				Department:  ptr("Sales"),
				Salary:      ptr(2.0),
				JoiningDate: &date,
				Skills:      &[]string{},
			},
			wantSet:  "UPDATE employees SET department = $1, joining_date = $2, name = $3, salary = $4, skills = $5 WHERE employee_id = $6",
			wantArgs: []any{"Sales", date, "Bob", 2.0, models.Skills{}, "E1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateEmployeeQuery(dollar, "E1", tt.update)
			require.NoError(t, err)

			assert.Equal(t, tt.wantSet, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateEmployeeQuery_NoFields(t *testing.T) {
	_, _, err := buildUpdateEmployeeQuery(dollar, "E1", models.EmployeeUpdate{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildDeleteEmployeeQuery(t *testing.T) {
	query, args, err := buildDeleteEmployeeQuery(question, "E1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM employees WHERE employee_id = ?", query)
	assert.Equal(t, []any{"E1"}, args)
}

func Test_buildAverageSalaryQuery(t *testing.T) {
	query, args, err := buildAverageSalaryQuery(dollar)
	require.NoError(t, err)

	assert.Equal(t, "SELECT department, AVG(salary) AS avg_salary FROM employees GROUP BY department ORDER BY department", query)
	assert.Empty(t, args)
}
