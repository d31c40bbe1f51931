// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// ServiceState is the lifecycle state of the server core.
type ServiceState int

const (
	// Created means the core exists but its scheduler has not started.
	Created ServiceState = iota
	// Running means the scheduler is ticking.
	Running
	// Destroyed is terminal: no ticks fire and the registry is disabled.
	Destroyed
)

func (s ServiceState) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in status documents.
func (s ServiceState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name produced by MarshalText.
func (s *ServiceState) UnmarshalText(text []byte) error {
	for _, st := range []ServiceState{Created, Running, Destroyed} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown service state %q", text)
}

// ServerStatus is a point-in-time snapshot of the server process.
type ServerStatus struct {
	PID       int          `json:"pid"`
	Version   string       `json:"version"`
	Alive     bool         `json:"alive"`
	State     ServiceState `json:"state"`
	Counter   int32        `json:"counter"`
	Started   bool         `json:"started"`
	Bindings  int          `json:"bindings"`
	Callbacks int          `json:"callbacks"`
	Priority  string       `json:"priority"`
}
