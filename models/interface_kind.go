// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// InterfaceKind selects which RPC interface a binding talks to.
type InterfaceKind string

const (
	// Primary exposes callback registration.
	Primary InterfaceKind = "primary"
	// Secondary exposes process id lookup and the type exercise call.
	Secondary InterfaceKind = "secondary"
)

// ErrUnknownInterface is returned when a bind request names an interface the
// server does not expose.
var ErrUnknownInterface = errors.New("no such interface")

// ParseInterfaceKind resolves an interface name. Unrecognized names never
// fall back to a default.
func ParseInterfaceKind(name string) (InterfaceKind, error) {
	switch InterfaceKind(name) {
	case Primary:
		return Primary, nil
	case Secondary:
		return Secondary, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInterface, name)
	}
}
