// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid after merging and defaults.
var (
	// ErrInvalidServerConfigs indicates a missing RPC listener address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidServiceConfigs indicates a non-positive tick interval or
	// delivery buffer, or a negative kill delay.
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
	// ErrInvalidClientConfigs indicates invalid client settings, such as an
	// empty server address or an unparsable policy list.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
