// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/crypto"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

func NewServices(storages *store.Storages, passwordHasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	employeeService := NewEmployeeValidationService().Wrap(
		NewEmployeeService(storages.EmployeeRepository, logger),
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, passwordHasher, cfg.App, logger),
		EmployeeService: employeeService,
	}
}
