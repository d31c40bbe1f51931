// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import "errors"

var (
	// ErrNotConnected is returned by calls issued while the binding is not
	// connected.
	ErrNotConnected = errors.New("binding is not connected")

	// ErrWrongInterface is returned when asking a binding for the stub of the
	// other interface.
	ErrWrongInterface = errors.New("binding is on another interface")

	// ErrUnexpectedEvent is returned when a binding stream does not start
	// with the connected event.
	ErrUnexpectedEvent = errors.New("unexpected binding event")

	// ErrEmptyCallbackID is returned when registering a callback without an
	// id.
	ErrEmptyCallbackID = errors.New("empty callback id")

	// ErrManagerClosed is returned by Connect after Close.
	ErrManagerClosed = errors.New("connection manager is closed")
)
