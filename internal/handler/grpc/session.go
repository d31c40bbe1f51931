// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/models"
)

// session is the server side of one Bind stream. Deliveries are queued and
// written to the stream by the Bind goroutine, so a slow client never blocks
// the scheduler.
type session struct {
	bindingID string
	events    chan *models.BindEvent
	// dropped is closed when the queue overflows; the Bind stream then ends.
	dropped chan struct{}

	mu      sync.Mutex
	closed  bool
	handles map[string]*sessionHandle
}

func newSession(bindingID string, buffer int) *session {
	return &session{
		bindingID: bindingID,
		events:    make(chan *models.BindEvent, buffer),
		dropped:   make(chan struct{}),
		handles:   make(map[string]*sessionHandle),
	}
}

// handle returns the handle for callbackID, creating it on first use. The
// same callback id always maps to the same handle.
func (s *session) handle(callbackID string) *sessionHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h, ok := s.handles[callbackID]; ok {
		return h
	}

	h := &sessionHandle{
		id:         handleID(s.bindingID, callbackID),
		callbackID: callbackID,
		session:    s,
	}
	s.handles[callbackID] = h
	return h
}

func (s *session) forget(callbackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.handles, callbackID)
}

// handleIDs returns the ids of every handle created on the session.
func (s *session) handleIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.handles))
	for _, h := range s.handles {
		ids = append(ids, h.id)
	}
	return ids
}

func (s *session) enqueue(ev *models.BindEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return registry.ErrRemoteDisconnected
	}

	select {
	case s.events <- ev:
		return nil
	default:
		// the client stopped reading; treat it as gone
		s.closed = true
		close(s.dropped)
		return registry.ErrRemoteDisconnected
	}
}

// Dropped is closed once the session gave up on a client that stopped
// reading.
func (s *session) Dropped() <-chan struct{} {
	return s.dropped
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// sessionHandle is the registry.Handle of one remote callback.
type sessionHandle struct {
	id         string
	callbackID string
	session    *session
}

func (h *sessionHandle) ID() string {
	return h.id
}

func (h *sessionHandle) Deliver(_ context.Context, value int32) error {
	return h.session.enqueue(&models.BindEvent{
		Type:       models.EventValueChanged,
		CallbackID: h.callbackID,
		Value:      value,
	})
}

func handleID(bindingID, callbackID string) string {
	return bindingID + "/" + callbackID
}
