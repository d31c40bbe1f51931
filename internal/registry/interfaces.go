// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import "context"

//go:generate mockgen -source=interfaces.go -destination=handle_mock_test.go -package=registry

// Handle is one registered client callback.
type Handle interface {
	// ID identifies the handle. Two handles with the same ID are the same
	// registration.
	ID() string

	// Deliver pushes value to the remote callback. It must not block on
	// client-side work. A remote that is gone is reported with an error
	// wrapping [ErrRemoteDisconnected].
	Deliver(ctx context.Context, value int32) error
}
