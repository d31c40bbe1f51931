// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the remote service.
//
// [ServerAdapter] is the RPC view of the server and is implemented over gRPC
// ([NewGRPCServerAdapter]). [StatusAdapter] reads the operational HTTP
// surface ([NewHTTPStatusAdapter]).
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] regardless of the protocol, e.g.
// [ErrServiceNotCreated] for a bind that has to be retried.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-remote-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
type ServerAdapter interface {
	// Start sends the explicit start-server command.
	Start(ctx context.Context, req models.StartRequest) (models.StartResponse, error)

	// Stop sends the stop-server command.
	Stop(ctx context.Context, req models.StopRequest) error

	// Bind opens a binding session. The first event of the returned stream
	// is the connected event; bind failures such as [ErrServiceNotCreated]
	// or [models.ErrUnknownInterface] surface from the first Recv. Cancel
	// ctx to unbind.
	Bind(ctx context.Context, req models.BindRequest) (BindStream, error)

	// RegisterCallback asks the server to deliver broadcasts for callbackID
	// on the binding stream.
	RegisterCallback(ctx context.Context, bindingID, callbackID string) error

	// UnregisterCallback stops deliveries for callbackID.
	UnregisterCallback(ctx context.Context, bindingID, callbackID string) error

	// GetServerProcessID returns the pid of the server process.
	GetServerProcessID(ctx context.Context, bindingID string) (int32, error)

	// ExerciseTypes sends one value of every primitive kind.
	ExerciseTypes(ctx context.Context, req models.ExerciseTypesRequest) error

	// KillProcess asks the server to terminate itself.
	KillProcess(ctx context.Context, bindingID string) error

	// Close releases the underlying connection.
	Close() error
}

// BindStream is the client side of an open binding.
type BindStream interface {
	// Recv blocks for the next event. Errors are mapped to the sentinels of
	// this package.
	Recv() (models.BindEvent, error)
}

// StatusAdapter reads the server's operational HTTP surface.
type StatusAdapter interface {
	// Status returns the status document of the server process.
	Status(ctx context.Context) (models.ServerStatus, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
