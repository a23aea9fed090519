// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs independent units of work with bounded concurrency.
// It defines the Worker interface and a Workers aggregate that runs a batch
// of workers and reports every failure.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work.
// Run should honour ctx cancellation.
//
// Example implementation:
//
//	type createWorker struct{ request models.EmployeeRequest }
//
//	func (w *createWorker) Run(ctx context.Context) error {
//	    return adapter.CreateEmployee(ctx, w.request)
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
