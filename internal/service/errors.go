// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrServiceNotCreated is returned by Bind without AutoCreate while no
	// service instance exists. Clients retry until someone creates it.
	ErrServiceNotCreated = errors.New("service is not created")

	// ErrServiceDestroyed is returned by calls that reach a core after its
	// teardown has begun.
	ErrServiceDestroyed = errors.New("service is destroyed")

	// ErrBindingNotFound is returned for calls naming an unknown binding.
	ErrBindingNotFound = errors.New("binding not found")

	// ErrWrongInterface is returned when a call is issued on a binding of the
	// other interface.
	ErrWrongInterface = errors.New("call not supported by the bound interface")

	// ErrEmptyCallbackID is returned when a callback registration carries no
	// callback id.
	ErrEmptyCallbackID = errors.New("empty callback id")
)
