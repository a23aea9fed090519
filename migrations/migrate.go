// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations holds the embedded schema migrations of the employees
// table, one directory per SQL dialect, and applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported drivers. The values match the STORAGE_DB_DRIVER configuration.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("unsupported migration driver")
)

// dialects maps a driver to its goose dialect and migrations directory.
var dialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	DriverPostgres: {dialect: goose.DialectPostgres, dir: "postgres"},
	DriverSQLite:   {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies every pending migration of driver to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}

	migrationsFS, err := fs.Sub(embedMigrations, d.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", d.dir, err)
	}

	provider, err := goose.NewProvider(d.dialect, db, migrationsFS)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
