// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

//go:generate mockgen -source=interfaces.go -destination=../mock/connection_mock.go -package=mock

// ServiceConnection receives connect and disconnect events of a binding.
// Both methods run on the binding's goroutine, in order, never concurrently
// with callback deliveries of the same binding.
type ServiceConnection interface {
	// OnServiceConnected fires on the first connect and after every
	// reconnect. It must be idempotent.
	OnServiceConnected(b *Binding)

	// OnServiceDisconnected fires when the server goes away. The binding is
	// kept unless it carries WaivePriority.
	OnServiceDisconnected(b *Binding)
}

// Callback receives values broadcast by the server.
type Callback interface {
	// CallbackID identifies the callback within its binding.
	CallbackID() string

	// ValueChanged is called on the binding's goroutine and must return
	// quickly; slow work belongs on the client's own task queue.
	ValueChanged(value int32)
}
