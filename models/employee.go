// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Employee is a single record of the employees collection as it is exposed
// through the API. The internal row identifier of the storage layer is never
// part of this struct; the external identity is EmployeeID only.
type Employee struct {
	// EmployeeID is the globally unique, immutable identifier of the employee.
	EmployeeID string `json:"employee_id"`

	// Name is the full name of the employee.
	Name string `json:"name"`

	// Department is the department the employee belongs to. Used for listing
	// and for salary aggregation.
	Department string `json:"department"`

	// Salary is not range-checked: negative values are stored as given.
	Salary float64 `json:"salary"`

	// JoiningDate is serialized as YYYY-MM-DD.
	JoiningDate Date `json:"joining_date"`

	// Skills is an ordered list of skill names, duplicates permitted.
	Skills Skills `json:"skills"`
}

// EmployeeRequest is the body of POST /employees.
//
// Every field is a pointer so that a missing field can be told apart from a
// zero value: salary 0 or an empty skills list are valid, an absent one is not.
type EmployeeRequest struct {
	EmployeeID  *string   `json:"employee_id" validate:"required"`
	Name        *string   `json:"name" validate:"required"`
	Department  *string   `json:"department" validate:"required"`
	Salary      *float64  `json:"salary" validate:"required"`
	JoiningDate *Date     `json:"joining_date" validate:"required"`
	Skills      *[]string `json:"skills" validate:"required"`
}

// Employee converts a validated request into an [Employee]. It must only be
// called after validation succeeded, nil fields are dereferenced as is.
func (r EmployeeRequest) Employee() Employee {
	return Employee{
		EmployeeID:  *r.EmployeeID,
		Name:        *r.Name,
		Department:  *r.Department,
		Salary:      *r.Salary,
		JoiningDate: *r.JoiningDate,
		Skills:      Skills(*r.Skills),
	}
}

// EmployeeUpdate is a partial update of an employee. A nil field is left
// untouched by the update; EmployeeID cannot be changed.
type EmployeeUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Department  *string   `json:"department,omitempty"`
	Salary      *float64  `json:"salary,omitempty"`
	JoiningDate *Date     `json:"joining_date,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
}

// IsEmpty reports whether no field was supplied.
func (u EmployeeUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Department == nil &&
		u.Salary == nil &&
		u.JoiningDate == nil &&
		u.Skills == nil
}

// DepartmentFilter selects a page of employees of one department.
type DepartmentFilter struct {
	Department string `json:"department" validate:"required"`
	// Offset is the number of records skipped (the "skip" query parameter).
	Offset int64 `json:"skip" validate:"gte=0"`
	Limit  int64 `json:"limit" validate:"gte=1,lte=100"`
}

// Default paging of department listings.
const (
	DefaultDepartmentOffset = 0
	DefaultDepartmentLimit  = 10
)

// SkillFilter selects every employee having Skill in its skills list.
type SkillFilter struct {
	Skill string `json:"skill" validate:"required"`
}

// DepartmentSalary is one row of the average-salary aggregation.
type DepartmentSalary struct {
	Department string  `json:"department"`
	AvgSalary  float64 `json:"avg_salary"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}
