// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/models"
)

// staticUserRepository is the configuration-backed implementation of
// [UserRepository]. It holds exactly one account whose password hash is
// computed at startup; there is no users table.
type staticUserRepository struct {
	user   models.User
	logger *logger.Logger
}

// NewStaticUserRepository constructs a [UserRepository] that knows a single
// user. The user's PasswordHash must already be a bcrypt hash.
func NewStaticUserRepository(user models.User, logger *logger.Logger) UserRepository {
	logger.Debug().Str("username", user.Username).Msg("creating static user repository")
	return &staticUserRepository{
		user:   user,
		logger: logger,
	}
}

// FindUserByUsername returns the configured user when username matches it
// exactly (case-sensitive), otherwise [ErrUserNotFound].
func (r *staticUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if username == "" || username != r.user.Username {
		logger.FromContext(ctx).Debug().
			Str("func", "*staticUserRepository.FindUserByUsername").
			Str("username", username).
			Msg("user not found")
		return models.User{}, ErrUserNotFound
	}

	return r.user, nil
}
