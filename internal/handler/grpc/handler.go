// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"sync"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/metrics"
	"github.com/MKhiriev/go-remote-service/internal/rpcapi"
	"github.com/MKhiriev/go-remote-service/internal/service"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler.
//
// It serves remote.Host, remote.Primary and remote.Secondary on top of the
// service layer and keeps one session per open Bind stream. Callback handles
// registered through remote.Primary deliver into the session of the binding
// they were registered on.
type Handler struct {
	// services provides access to the host and its interfaces.
	services *service.Services

	// deliveryBuffer bounds the outbound queue of every session.
	deliveryBuffer int

	metrics *metrics.Metrics
	logger  *logger.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewHandler constructs a [Handler].
//
// Parameters:
//   - services: service layer the RPC methods delegate to.
//   - deliveryBuffer: capacity of the per-session outbound queue.
//   - m: collectors updated by the interceptors.
//   - logger: structured logger used for transport diagnostics.
func NewHandler(services *service.Services, deliveryBuffer int, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:       services,
		deliveryBuffer: deliveryBuffer,
		metrics:        m,
		logger:         logger,
		sessions:       make(map[string]*session),
	}
}

// Register attaches the three services to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	rpcapi.RegisterHostServer(s, h)
	rpcapi.RegisterPrimaryServer(s, h)
	rpcapi.RegisterSecondaryServer(s, h)
}

// ServerOptions returns the interceptors every server built around h needs.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryTraceID, h.unaryLogging),
		grpc.ChainStreamInterceptor(h.streamTraceID, h.streamLogging),
	}
}

func (h *Handler) addSession(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.bindingID] = s
}

func (h *Handler) removeSession(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.sessions[s.bindingID] == s {
		delete(h.sessions, s.bindingID)
	}
}

func (h *Handler) session(bindingID string) (*session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[bindingID]
	return s, ok
}

// SessionCount returns the number of open Bind streams.
func (h *Handler) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
