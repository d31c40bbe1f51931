// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
//go:generate mockgen -destination=handle_mock_test.go -package=service github.com/MKhiriev/go-remote-service/internal/registry Handle

// LifecycleService is the host-facing part of the server: explicit
// start/stop, binding and status.
type LifecycleService interface {
	// Start is the explicit start-server command. It creates the service if
	// needed and marks it started. It never affects the scheduler.
	Start(ctx context.Context, req models.StartRequest) (models.StartResponse, error)

	// Stop clears the started mark. The service is destroyed once it is
	// neither started nor bound.
	Stop(ctx context.Context, req models.StopRequest) error

	// Bind opens a binding on the named interface. Unknown names fail with
	// models.ErrUnknownInterface; a missing service without AutoCreate fails
	// with ErrServiceNotCreated.
	Bind(ctx context.Context, req models.BindRequest) (BindingRecord, error)

	// Unbind releases a binding. Unknown ids are ignored.
	Unbind(ctx context.Context, bindingID string)

	// Status returns a snapshot of the server process.
	Status(ctx context.Context) models.ServerStatus
}

// PrimaryService is the callback registration interface.
type PrimaryService interface {
	// RegisterCallback adds h to the callback registry of the service the
	// binding is attached to. Registration is idempotent per handle id.
	RegisterCallback(ctx context.Context, bindingID string, h registry.Handle) error

	// UnregisterCallback removes the handle with handleID. Absent handles
	// are ignored.
	UnregisterCallback(ctx context.Context, bindingID, handleID string) error
}

// SecondaryService is the process-id / type exercise interface.
type SecondaryService interface {
	// GetServerProcessID returns the pid of the server process.
	GetServerProcessID(ctx context.Context, bindingID string) (int32, error)

	// ExerciseTypes accepts one value of every primitive kind and does
	// nothing with them.
	ExerciseTypes(ctx context.Context, req models.ExerciseTypesRequest) error

	// KillProcess terminates the server process after acknowledging the
	// call. It exists to let clients observe crash and reconnection.
	KillProcess(ctx context.Context, bindingID string) error
}
