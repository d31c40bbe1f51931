// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Poster queues work onto the client's own execution context.
type Poster interface {
	// Post enqueues task and returns immediately. It reports false when the
	// task was dropped because the queue has quit.
	Post(task func()) bool
}
