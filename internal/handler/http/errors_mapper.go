// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-employee-service/internal/app"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/service"
	"github.com/MKhiriev/go-employee-service/internal/store"
	"github.com/MKhiriev/go-employee-service/internal/utils"
	"github.com/MKhiriev/go-employee-service/internal/validators"
	"github.com/MKhiriev/go-employee-service/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidForm:       http.StatusBadRequest,
	ErrInvalidFieldType:  http.StatusUnprocessableEntity,
	ErrInvalidQueryParam: http.StatusUnprocessableEntity,

	models.ErrInvalidDate:            http.StatusUnprocessableEntity,
	validators.ErrInvalidEmployee:    http.StatusUnprocessableEntity,
	validators.ErrInvalidQueryParams: http.StatusUnprocessableEntity,
	validators.ErrInvalidCredentials: http.StatusUnprocessableEntity,
	service.ErrInvalidDataProvided:   http.StatusUnprocessableEntity,
	service.ErrNoFieldsToUpdate:      http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUnauthorized:          http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:      http.StatusUnauthorized,
	utils.ErrInvalidBearerHeader:     http.StatusUnauthorized,
	store.ErrEmployeeAlreadyExists:   http.StatusBadRequest,
	store.ErrEmployeeNotFound:        http.StatusNotFound,
	store.ErrEmployeeSchemaViolation: http.StatusUnprocessableEntity,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:        http.StatusInternalServerError,
	store.ErrExecutingQuery:          http.StatusInternalServerError,
	store.ErrExecutingStatement:      http.StatusInternalServerError,
	store.ErrScanningRow:             http.StatusInternalServerError,
	store.ErrScanningRows:            http.StatusInternalServerError,
}

// errorDetailMap holds fixed response details. Validation errors not listed
// here are reported with their own message so that the offending fields are
// visible to the caller.
var errorDetailMap = map[error]string{
	store.ErrEmployeeNotFound:      app.MsgEmployeeNotFound,
	store.ErrEmployeeAlreadyExists: app.MsgEmployeeAlreadyExists,
	service.ErrInvalidCredentials:  app.MsgIncorrectUsernameOrPassword,
	service.ErrUnauthorized:        app.MsgCouldNotValidateCredentials,
	ErrEmptyAuthorizationHeader:    app.MsgNotAuthenticated,
	utils.ErrInvalidBearerHeader:   app.MsgNotAuthenticated,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error, status int) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err with the request-scoped logger and writes the mapped
// status and {"detail"} body. 401 responses carry a Bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteError(w, detailFromError(err, status), status)
}
