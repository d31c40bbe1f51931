// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/adapter"
	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/sethvargo/go-retry"
)

// Manager establishes and tears down bindings over one server adapter.
type Manager struct {
	adapter       adapter.ServerAdapter
	caller        string
	reconnectBase time.Duration
	reconnectMax  time.Duration
	logger        *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	closed   bool
	bindings map[*Binding]struct{}
}

// NewManager builds a manager. caller is reported to the server with every
// bind and ends up in its log.
func NewManager(a adapter.ServerAdapter, cfg config.Client, caller string, log *logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	base := cfg.ReconnectBase
	if base <= 0 {
		base = 200 * time.Millisecond
	}
	maxStep := max(cfg.ReconnectMax, base)

	return &Manager{
		adapter:       a,
		caller:        caller,
		reconnectBase: base,
		reconnectMax:  maxStep,
		logger:        log,
		ctx:           ctx,
		cancel:        cancel,
		bindings:      make(map[*Binding]struct{}),
	}
}

// Connect opens a binding on kind with flags and returns once the first bind
// attempt has an outcome. A binding whose server is unreachable or not yet
// created is returned in the Binding state and connects later. Requests the
// server can never satisfy, such as an unknown interface, fail here.
//
// ctx bounds only the wait for the first attempt; the binding lives until
// Unbind or Close.
func (m *Manager) Connect(ctx context.Context, kind models.InterfaceKind, flags models.PolicyFlag, conn ServiceConnection) (*Binding, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	b := newBinding(m, kind, flags, conn)
	m.bindings[b] = struct{}{}
	m.mu.Unlock()

	first := make(chan error, 1)
	go b.run(first)

	select {
	case err := <-first:
		if err != nil {
			<-b.Done()
			return nil, fmt.Errorf("connect %s: %w", kind, err)
		}
		return b, nil
	case <-ctx.Done():
		b.Unbind()
		return nil, ctx.Err()
	}
}

// Bindings returns the bindings that have not been released yet.
func (m *Manager) Bindings() []*Binding {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Binding, 0, len(m.bindings))
	for b := range m.bindings {
		out = append(out, b)
	}
	return out
}

// Close unbinds every binding and rejects further Connect calls.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	bindings := make([]*Binding, 0, len(m.bindings))
	for b := range m.bindings {
		bindings = append(bindings, b)
	}
	m.mu.Unlock()

	m.cancel()
	for _, b := range bindings {
		<-b.Done()
	}
}

func (m *Manager) forget(b *Binding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bindings, b)
}

// Backoff returns a fresh reconnect schedule: exponential from the base
// delay, capped, with 10% jitter. It never gives up.
func (m *Manager) Backoff() retry.Backoff {
	b := retry.NewExponential(m.reconnectBase)
	b = retry.WithCappedDuration(m.reconnectMax, b)
	return retry.WithJitterPercent(10, b)
}

// retryable reports whether a bind failure may heal by itself.
func retryable(err error) bool {
	return errors.Is(err, adapter.ErrServiceNotCreated) ||
		errors.Is(err, adapter.ErrServerUnavailable) ||
		errors.Is(err, adapter.ErrStreamClosed)
}
