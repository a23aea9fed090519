// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/service"
	"github.com/MKhiriev/go-employee-service/internal/utils"
)

type Handler struct {
	services *service.Services

	traceIDGenerator *utils.UUIDGenerator
	requestTimeout   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		traceIDGenerator: utils.NewUUIDGenerator(),
		requestTimeout:   cfg.RequestTimeout,
		logger:           logger,
	}
}
