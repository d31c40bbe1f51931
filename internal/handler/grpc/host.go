// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/internal/rpcapi"
	"github.com/MKhiriev/go-remote-service/internal/service"
	"github.com/MKhiriev/go-remote-service/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Start implements rpcapi.HostServer.
func (h *Handler) Start(ctx context.Context, req *models.StartRequest) (*models.StartResponse, error) {
	resp, err := h.services.Lifecycle.Start(ctx, *req)
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// Stop implements rpcapi.HostServer.
func (h *Handler) Stop(ctx context.Context, req *models.StopRequest) (*models.Empty, error) {
	if err := h.services.Lifecycle.Stop(ctx, *req); err != nil {
		return nil, toStatus(err)
	}
	return &models.Empty{}, nil
}

// Bind implements rpcapi.HostServer. The stream stays open for the lifetime
// of the binding; returning from Bind unbinds.
func (h *Handler) Bind(req *models.BindRequest, stream rpcapi.HostBindServer) error {
	ctx := stream.Context()
	log := logger.FromContext(ctx)

	rec, err := h.services.Lifecycle.Bind(ctx, *req)
	if err != nil {
		return toStatus(err)
	}

	sess := newSession(rec.ID, h.deliveryBuffer)
	h.addSession(sess)
	defer h.closeSession(context.WithoutCancel(ctx), sess)

	connected := &models.BindEvent{
		Type:      models.EventConnected,
		BindingID: rec.ID,
		Interface: rec.Interface,
		PID:       int32(h.services.Lifecycle.Status(ctx).PID),
	}
	if err = stream.Send(connected); err != nil {
		return err
	}

	log.Debug().Str("binding_id", rec.ID).Msg("binding session open")

	for {
		// a dropped session wins over events still in the queue
		select {
		case <-sess.Dropped():
			return h.dropBinding(ctx, rec.ID)
		default:
		}

		select {
		case <-ctx.Done():
			return nil
		case <-rec.Done():
			return status.Error(codes.Unavailable, service.ErrServiceDestroyed.Error())
		case <-sess.Dropped():
			return h.dropBinding(ctx, rec.ID)
		case ev := <-sess.events:
			if err = stream.Send(ev); err != nil {
				log.Debug().Err(err).Str("binding_id", rec.ID).Msg("binding stream send failed")
				return err
			}
		}
	}
}

// dropBinding ends a Bind stream whose client stopped reading. The client
// sees Unavailable, so it rebinds and registers again.
func (h *Handler) dropBinding(ctx context.Context, bindingID string) error {
	logger.FromContext(ctx).Warn().Str("binding_id", bindingID).Msg("delivery queue overflow, dropping binding")
	return toStatus(registry.ErrRemoteDisconnected)
}

// closeSession stops deliveries, drops the session's callbacks and unbinds.
func (h *Handler) closeSession(ctx context.Context, sess *session) {
	sess.close()
	h.removeSession(sess)

	for _, id := range sess.handleIDs() {
		// the core may already be gone; nothing to clean up then
		_ = h.services.Primary.UnregisterCallback(ctx, sess.bindingID, id)
	}

	h.services.Lifecycle.Unbind(ctx, sess.bindingID)
	logger.FromContext(ctx).Debug().Str("binding_id", sess.bindingID).Msg("binding session closed")
}
