// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-employee-service/internal/app"
	"github.com/MKhiriev/go-employee-service/internal/utils"
	"github.com/MKhiriev/go-employee-service/models"
)

const employeeIDParam = "employee_id"

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var request models.EmployeeRequest
	if err := decodeJSON(r.Body, &request); err != nil {
		writeError(w, r, err, "*Handler.createEmployee")
		return
	}

	if err := h.services.EmployeeService.CreateEmployee(r.Context(), request); err != nil {
		writeError(w, r, err, "*Handler.createEmployee")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEmployeeCreated}, http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), chi.URLParam(r, employeeIDParam))
	if err != nil {
		writeError(w, r, err, "*Handler.getEmployee")
		return
	}

	utils.WriteJSON(w, employee, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var update models.EmployeeUpdate
	if err := decodeJSON(r.Body, &update); err != nil {
		writeError(w, r, err, "*Handler.updateEmployee")
		return
	}

	err := h.services.EmployeeService.UpdateEmployee(r.Context(), chi.URLParam(r, employeeIDParam), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updateEmployee")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEmployeeUpdated}, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EmployeeService.DeleteEmployee(r.Context(), chi.URLParam(r, employeeIDParam)); err != nil {
		writeError(w, r, err, "*Handler.deleteEmployee")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgEmployeeDeleted}, http.StatusOK)
}

// listByDepartment serves GET /employees?department=&skip=&limit=.
func (h *Handler) listByDepartment(w http.ResponseWriter, r *http.Request) {
	filter, err := departmentFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err, "*Handler.listByDepartment")
		return
	}

	employees, err := h.services.EmployeeService.ListByDepartment(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "*Handler.listByDepartment")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

func (h *Handler) searchBySkill(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("skill") {
		writeError(w, r, fmt.Errorf("%w: skill: field required", ErrInvalidQueryParam), "*Handler.searchBySkill")
		return
	}

	employees, err := h.services.EmployeeService.SearchBySkill(r.Context(), models.SkillFilter{Skill: query.Get("skill")})
	if err != nil {
		writeError(w, r, err, "*Handler.searchBySkill")
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

func (h *Handler) averageSalary(w http.ResponseWriter, r *http.Request) {
	averages, err := h.services.EmployeeService.AverageSalaryByDepartment(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.averageSalary")
		return
	}

	utils.WriteJSON(w, averages, http.StatusOK)
}

// departmentFilterFromQuery reads department (required), skip and limit.
// Range checks are left to the validation service.
func departmentFilterFromQuery(query url.Values) (models.DepartmentFilter, error) {
	filter := models.DepartmentFilter{
		Offset: models.DefaultDepartmentOffset,
		Limit:  models.DefaultDepartmentLimit,
	}

	if !query.Has("department") {
		return filter, fmt.Errorf("%w: department: field required", ErrInvalidQueryParam)
	}
	filter.Department = query.Get("department")

	var err error
	if query.Has("skip") {
		if filter.Offset, err = strconv.ParseInt(query.Get("skip"), 10, 64); err != nil {
			return filter, fmt.Errorf("%w: skip: must be an integer", ErrInvalidQueryParam)
		}
	}
	if query.Has("limit") {
		if filter.Limit, err = strconv.ParseInt(query.Get("limit"), 10, 64); err != nil {
			return filter, fmt.Errorf("%w: limit: must be an integer", ErrInvalidQueryParam)
		}
	}

	return filter, nil
}

// decodeJSON decodes body into v. Syntax errors map to ErrInvalidJSON (400),
// well-formed bodies with wrongly typed fields or bad dates keep a 422 error.
func decodeJSON(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)

	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrInvalidDate):
		return err
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: %s: must be of type %s", ErrInvalidFieldType, typeErr.Field, typeErr.Type)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
