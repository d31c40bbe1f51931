// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-remote-service/models"
)

// GetServerProcessID implements rpcapi.SecondaryServer.
func (h *Handler) GetServerProcessID(ctx context.Context, req *models.SecondaryRequest) (*models.ProcessID, error) {
	pid, err := h.services.Secondary.GetServerProcessID(ctx, req.BindingID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &models.ProcessID{PID: pid}, nil
}

// ExerciseTypes implements rpcapi.SecondaryServer.
func (h *Handler) ExerciseTypes(ctx context.Context, req *models.ExerciseTypesRequest) (*models.Empty, error) {
	if err := h.services.Secondary.ExerciseTypes(ctx, *req); err != nil {
		return nil, toStatus(err)
	}
	return &models.Empty{}, nil
}

// KillProcess implements rpcapi.SecondaryServer. The reply is sent before
// the process goes away.
func (h *Handler) KillProcess(ctx context.Context, req *models.SecondaryRequest) (*models.Empty, error) {
	if err := h.services.Secondary.KillProcess(ctx, req.BindingID); err != nil {
		return nil, toStatus(err)
	}
	return &models.Empty{}, nil
}
