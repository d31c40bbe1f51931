// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-remote-service/internal/service"
	"github.com/MKhiriev/go-remote-service/models"
)

// RegisterCallback implements rpcapi.PrimaryServer.
func (h *Handler) RegisterCallback(ctx context.Context, req *models.CallbackRequest) (*models.Empty, error) {
	if req.CallbackID == "" {
		return nil, toStatus(service.ErrEmptyCallbackID)
	}

	sess, ok := h.session(req.BindingID)
	if !ok {
		return nil, toStatus(service.ErrBindingNotFound)
	}

	if err := h.services.Primary.RegisterCallback(ctx, req.BindingID, sess.handle(req.CallbackID)); err != nil {
		return nil, toStatus(err)
	}

	return &models.Empty{}, nil
}

// UnregisterCallback implements rpcapi.PrimaryServer.
func (h *Handler) UnregisterCallback(ctx context.Context, req *models.CallbackRequest) (*models.Empty, error) {
	if req.CallbackID == "" {
		return nil, toStatus(service.ErrEmptyCallbackID)
	}

	sess, ok := h.session(req.BindingID)
	if !ok {
		return nil, toStatus(service.ErrBindingNotFound)
	}

	if err := h.services.Primary.UnregisterCallback(ctx, req.BindingID, handleID(req.BindingID, req.CallbackID)); err != nil {
		return nil, toStatus(err)
	}
	sess.forget(req.CallbackID)

	return &models.Empty{}, nil
}
