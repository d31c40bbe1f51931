// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs long-lived background loops side by side and stops
// all of them as soon as one fails.
package workers

import "context"

// Worker is a long-lived background loop.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that
// returns nil after cancellation is considered to have stopped cleanly.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to [Worker].
type Func func(ctx context.Context) error

// Run implements Worker.
func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}
