// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrServiceNotCreated means the bind was rejected because nobody has
	// created the service yet. Retry, or bind with AutoCreate.
	ErrServiceNotCreated = errors.New("service is not created")

	// ErrServerUnavailable means the server process is unreachable or its
	// service instance went away.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrBindingNotFound means the server does not know the binding id.
	ErrBindingNotFound = errors.New("binding not found")

	// ErrWrongInterface means the call is not served by the bound interface.
	ErrWrongInterface = errors.New("call not supported by the bound interface")

	// ErrRegistryDisabled means the service is being torn down and accepts
	// no more callbacks.
	ErrRegistryDisabled = errors.New("callback registry is disabled")

	// ErrInvalidArgument means the server rejected the request payload.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStreamClosed means the server ended a binding stream.
	ErrStreamClosed = errors.New("binding stream closed")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = errors.New("not found")
)
