// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-employee-service/internal/app"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/utils"
	"github.com/MKhiriev/go-employee-service/models"
)

const healthStatusOK = "ok"

// health reports whether the record store is reachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EmployeeService.Health(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("storage is unavailable")
		utils.WriteError(w, app.MsgStorageUnavailable, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: healthStatusOK}, http.StatusOK)
}
