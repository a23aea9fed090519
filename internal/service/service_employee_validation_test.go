// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-employee-service/internal/mock"
	"github.com/MKhiriev/go-employee-service/internal/validators"
	"github.com/MKhiriev/go-employee-service/models"
)

func newTestValidationSvc(t *testing.T) (EmployeeService, *mock.MockEmployeeService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockEmployeeService(ctrl)
	return NewEmployeeValidationService().Wrap(inner), inner
}

func TestValidation_CreateEmployee(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	req := validRequest()
	inner.EXPECT().CreateEmployee(gomock.Any(), req).Return(nil)
	require.NoError(t, svc.CreateEmployee(context.Background(), req))

	missing := validRequest()
	missing.Skills = nil
	err := svc.CreateEmployee(context.Background(), missing)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmployee)
	assert.Contains(t, err.Error(), "skills")
}

func TestValidation_UpdateEmployee(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	update := models.EmployeeUpdate{Name: ptr("Bob")}
	inner.EXPECT().UpdateEmployee(gomock.Any(), "E1", update).Return(nil)
	require.NoError(t, svc.UpdateEmployee(context.Background(), "E1", update))

	err := svc.UpdateEmployee(context.Background(), "E1", models.EmployeeUpdate{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestValidation_ListByDepartment(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	ok := models.DepartmentFilter{Department: "Eng", Offset: 0, Limit: 100}
	inner.EXPECT().ListByDepartment(gomock.Any(), ok).Return([]models.Employee{}, nil)
	_, err := svc.ListByDepartment(context.Background(), ok)
	require.NoError(t, err)

	for _, bad := range []models.DepartmentFilter{
		{Department: "Eng", Limit: 0},
		{Department: "Eng", Limit: 101},
		{Department: "Eng", Offset: -1, Limit: 10},
		{Limit: 10},
	} {
		_, err = svc.ListByDepartment(context.Background(), bad)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "filter %+v", bad)
	}
}

func TestValidation_SearchBySkill(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	inner.EXPECT().SearchBySkill(gomock.Any(), models.SkillFilter{Skill: "go"}).Return(nil, nil)
	_, err := svc.SearchBySkill(context.Background(), models.SkillFilter{Skill: "go"})
	require.NoError(t, err)

	_, err = svc.SearchBySkill(context.Background(), models.SkillFilter{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestValidation_PassThrough(t *testing.T) {
	svc, inner := newTestValidationSvc(t)

	inner.EXPECT().GetEmployee(gomock.Any(), "E1").Return(models.Employee{EmployeeID: "E1"}, nil)
	inner.EXPECT().DeleteEmployee(gomock.Any(), "E1").Return(nil)
	inner.EXPECT().AverageSalaryByDepartment(gomock.Any()).Return(nil, nil)
	inner.EXPECT().Health(gomock.Any()).Return(nil)

	got, err := svc.GetEmployee(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "E1", got.EmployeeID)
	assert.NoError(t, svc.DeleteEmployee(context.Background(), "E1"))
	_, err = svc.AverageSalaryByDepartment(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, svc.Health(context.Background()))
}
