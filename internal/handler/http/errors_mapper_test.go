// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-employee-service/internal/service"
	"github.com/MKhiriev/go-employee-service/internal/store"
	"github.com/MKhiriev/go-employee-service/internal/validators"
	"github.com/MKhiriev/go-employee-service/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidEmployee), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", service.ErrNoFieldsToUpdate, validators.ErrNoFieldsToUpdate), http.StatusUnprocessableEntity},
		{fmt.Errorf("decode: %w", models.ErrInvalidDate), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{fmt.Errorf("create: %w", store.ErrEmployeeAlreadyExists), http.StatusBadRequest},
		{store.ErrEmployeeNotFound, http.StatusNotFound},
		{store.ErrEmployeeSchemaViolation, http.StatusUnprocessableEntity},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: token is expired", service.ErrUnauthorized), http.StatusUnauthorized},
		{store.ErrScanningRows, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestDetailFromError(t *testing.T) {
	assert.Equal(t, "Employee not found", detailFromError(store.ErrEmployeeNotFound, http.StatusNotFound))
	assert.Equal(t, "Employee ID already exists", detailFromError(store.ErrEmployeeAlreadyExists, http.StatusBadRequest))
	assert.Equal(t, "Internal Server Error", detailFromError(errors.New("pq: secret"), http.StatusInternalServerError))
	assert.Equal(t, "no fields to update", detailFromError(service.ErrNoFieldsToUpdate, http.StatusUnprocessableEntity))
}

func TestWriteError_Challenge(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, service.ErrUnauthorized, "test")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rr.Body.String())
}
