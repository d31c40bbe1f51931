// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/internal/service"
	"github.com/MKhiriev/go-remote-service/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC status errors. The sentinel text is
// kept as the status message so clients can log it verbatim.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, models.ErrUnknownInterface):
		return codes.NotFound
	case errors.Is(err, service.ErrBindingNotFound):
		return codes.NotFound
	case errors.Is(err, registry.ErrRegistryDisabled):
		return codes.FailedPrecondition
	case errors.Is(err, registry.ErrRemoteDisconnected):
		return codes.Unavailable
	case errors.Is(err, service.ErrServiceNotCreated):
		return codes.Unavailable
	case errors.Is(err, service.ErrServiceDestroyed):
		return codes.Unavailable
	case errors.Is(err, service.ErrWrongInterface):
		return codes.PermissionDenied
	case errors.Is(err, service.ErrEmptyCallbackID):
		return codes.InvalidArgument
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}
