// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/internal/utils"
	"github.com/MKhiriev/go-employee-service/models"
)

// login exchanges form-encoded credentials for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidForm, err), "*Handler.login")
		return
	}

	credentials := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	log.Info().Str("username", user.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenType,
	}, http.StatusOK)
}
