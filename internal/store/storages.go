// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-employee-service/internal/config"
	"github.com/MKhiriev/go-employee-service/internal/crypto"
	"github.com/MKhiriev/go-employee-service/internal/logger"
	"github.com/MKhiriev/go-employee-service/models"
)

// ErrNoAdminPassword is returned when neither a password nor a password
// hash is configured for the admin user.
var ErrNoAdminPassword = errors.New("admin password or password hash is required")

// Storages groups every repository of the service together with the
// database handle they share.
type Storages struct {
	EmployeeRepository EmployeeRepository
	UserRepository     UserRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories. The admin password from configuration is hashed
// with hasher here and the plaintext is not retained.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, hasher crypto.PasswordHasher, log *logger.Logger) (*Storages, error) {
	admin, err := adminUser(cfg.App, hasher)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error preparing admin user")
		return nil, err
	}

	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		EmployeeRepository: NewEmployeeRepository(db, log),
		UserRepository:     NewStaticUserRepository(admin, log),
		db:                 db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// adminUser prefers a pre-computed hash over the plaintext password.
func adminUser(cfg config.App, hasher crypto.PasswordHasher) (models.User, error) {
	user := models.User{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash}
	if user.PasswordHash != "" {
		return user, nil
	}

	if cfg.AdminPassword == "" {
		return models.User{}, ErrNoAdminPassword
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing admin password: %w", err)
	}
	user.PasswordHash = hash

	return user, nil
}
