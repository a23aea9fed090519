// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRequest_MissingFieldsStayNil(t *testing.T) {
	var req EmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"employee_id":"E1","salary":0,"skills":[]}`), &req))

	assert.NotNil(t, req.Salary)
	assert.NotNil(t, req.Skills)
	assert.Nil(t, req.Name)
	assert.Nil(t, req.Department)
	assert.Nil(t, req.JoiningDate)
}

func TestEmployeeRequest_Employee(t *testing.T) {
	raw := `{"employee_id":"E1","name":"Alice","department":"Engineering","salary":-5,"joining_date":"2024-01-02","skills":["go"]}`

	var req EmployeeRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	assert.Equal(t, Employee{
		EmployeeID:  "E1",
		Name:        "Alice",
		Department:  "Engineering",
		Salary:      -5,
		JoiningDate: NewDate(2024, 1, 2),
		Skills:      Skills{"go"},
	}, req.Employee())
}

func TestEmployeeUpdate_IsEmpty(t *testing.T) {
	var empty EmployeeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsEmpty())

	var salaryOnly EmployeeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"salary":0}`), &salaryOnly))
	assert.False(t, salaryOnly.IsEmpty())

	// unknown fields are ignored and do not count as an update
	var unknown EmployeeUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"employee_id":"E2"}`), &unknown))
	assert.True(t, unknown.IsEmpty())
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
