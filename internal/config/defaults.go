// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8000"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultTokenDuration   = 30 * time.Minute
	defaultTokenIssuer     = "employee-service"
	defaultAdminUsername   = "admin"
	defaultLogLevel        = "debug"
	defaultClientAddress   = "http://localhost:8000"
	defaultClientTimeout   = 10 * time.Second
	defaultTokenFile       = ".employee-token"
	defaultImportWorkers   = 4
)

// defaultConfig returns the lowest-priority configuration layer.
// Secrets (sign key, admin password, DSN) have no defaults.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			AdminUsername: defaultAdminUsername,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:       defaultClientAddress,
			RequestTimeout:    defaultClientTimeout,
			TokenFile:         defaultTokenFile,
			ImportConcurrency: defaultImportWorkers,
		},
	}
}
