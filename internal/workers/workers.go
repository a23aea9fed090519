// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	limit   int
}

// NewWorkers returns a batch running at most limit workers at a time.
// A non-positive limit means no bound.
func NewWorkers(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

// Add appends workers to the batch. It must not be called during Run.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run executes every worker and waits for all of them. A failing worker does
// not stop the others. The result joins all errors in worker order; the
// error at index i of Errors belongs to the i-th worker.
func (w *Workers) Run(ctx context.Context) *Result {
	result := &Result{Errors: make([]error, len(w.workers))}

	var g errgroup.Group
	if w.limit > 0 {
		g.SetLimit(w.limit)
	}

	for i, worker := range w.workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				result.Errors[i] = err
				return nil
			}
			result.Errors[i] = worker.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return result
}

// Result holds per-worker outcomes of a batch.
type Result struct {
	Errors []error
}

// Err joins all non-nil errors, or returns nil if every worker succeeded.
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

// Failed returns the number of workers that returned an error.
func (r *Result) Failed() int {
	failed := 0
	for _, err := range r.Errors {
		if err != nil {
			failed++
		}
	}
	return failed
}
