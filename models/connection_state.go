// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionState is the client-side state of one binding.
type ConnectionState int

const (
	Unbound ConnectionState = iota
	Binding
	Connected
	Disconnected
)

func (s ConnectionState) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Binding:
		return "binding"
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
