// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import "errors"

var (
	// ErrRegistryDisabled is returned by Register once the registry has been
	// disabled on server teardown.
	ErrRegistryDisabled = errors.New("callback registry is disabled")

	// ErrRemoteDisconnected is reported by a Handle whose remote endpoint is
	// gone.
	ErrRemoteDisconnected = errors.New("remote endpoint disconnected")
)
