// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT is received
	// and then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done and then shuts down gracefully.
	// It returns early with an error if the listener cannot be started.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
