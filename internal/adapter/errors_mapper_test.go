// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/go-remote-service/models"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapGRPCError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "unknown interface", in: status.Error(codes.NotFound, `no such interface: "x"`), want: models.ErrUnknownInterface},
		{name: "binding not found", in: status.Error(codes.NotFound, "binding not found"), want: ErrBindingNotFound},
		{name: "not created", in: status.Error(codes.Unavailable, "service is not created"), want: ErrServiceNotCreated},
		{name: "unavailable", in: status.Error(codes.Unavailable, "connection refused"), want: ErrServerUnavailable},
		{name: "wrong interface", in: status.Error(codes.PermissionDenied, "nope"), want: ErrWrongInterface},
		{name: "registry disabled", in: status.Error(codes.FailedPrecondition, "disabled"), want: ErrRegistryDisabled},
		{name: "invalid argument", in: status.Error(codes.InvalidArgument, "empty"), want: ErrInvalidArgument},
		{name: "canceled", in: status.Error(codes.Canceled, "bye"), want: context.Canceled},
		{name: "deadline", in: status.Error(codes.DeadlineExceeded, "slow"), want: context.DeadlineExceeded},
		{name: "eof", in: io.EOF, want: ErrStreamClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapGRPCError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapGRPCError(nil))

	plain := errors.New("plain")
	assert.Same(t, plain, mapGRPCError(plain))
	assert.EqualError(t, mapGRPCError(status.Error(codes.Internal, "boom")), "rpc Internal: boom")
}
