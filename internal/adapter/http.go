// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/utils"
	"github.com/MKhiriev/go-employee-service/models"
)

const employeePath = "/employees/{employee_id}"

type httpEmployeeAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPEmployeeAdapter constructs an HTTP/REST implementation of
// [EmployeeAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
func NewHTTPEmployeeAdapter(cfg config.Adapter, logger *logger.Logger) (EmployeeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpEmployeeAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpEmployeeAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpEmployeeAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials form to /token and stores the returned access
// token.
func (h *httpEmployeeAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	var tokenResp models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Username,
			"password": credentials.Password,
		}).
		SetResult(&tokenResp).
		Post("/token")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("login: %w: empty access token", ErrUnauthorized)
	}

	h.SetToken(tokenResp.AccessToken)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return tokenResp.AccessToken, nil
}

func (h *httpEmployeeAdapter) CreateEmployee(ctx context.Context, request models.EmployeeRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/employees")
	if err != nil {
		return fmt.Errorf("create employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpEmployeeAdapter) GetEmployee(ctx context.Context, employeeID string) (models.Employee, error) {
	var employee models.Employee

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("employee_id", employeeID).
		SetResult(&employee).
		Get(employeePath)
	if err != nil {
		return models.Employee{}, fmt.Errorf("get employee request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

func (h *httpEmployeeAdapter) UpdateEmployee(ctx context.Context, employeeID string, update models.EmployeeUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("employee_id", employeeID).
		SetBody(update).
		Put(employeePath)
	if err != nil {
		return fmt.Errorf("update employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpEmployeeAdapter) DeleteEmployee(ctx context.Context, employeeID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("employee_id", employeeID).
		Delete(employeePath)
	if err != nil {
		return fmt.Errorf("delete employee request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpEmployeeAdapter) ListByDepartment(ctx context.Context, filter models.DepartmentFilter) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"department": filter.Department,
			"skip":       strconv.FormatInt(filter.Offset, 10),
			"limit":      strconv.FormatInt(filter.Limit, 10),
		}).
		SetResult(&employees).
		Get("/employees")
	if err != nil {
		return nil, fmt.Errorf("list employees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return employees, nil
}

func (h *httpEmployeeAdapter) SearchBySkill(ctx context.Context, skill string) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("skill", skill).
		SetResult(&employees).
		Get("/employees/search")
	if err != nil {
		return nil, fmt.Errorf("search employees request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return employees, nil
}

func (h *httpEmployeeAdapter) AverageSalaryByDepartment(ctx context.Context) ([]models.DepartmentSalary, error) {
	averages := make([]models.DepartmentSalary, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&averages).
		Get("/employees/avg-salary")
	if err != nil {
		return nil, fmt.Errorf("average salary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return averages, nil
}

func (h *httpEmployeeAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpEmployeeAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
