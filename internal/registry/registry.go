// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-remote-service/internal/logger"
)

// BroadcastResult summarizes one Broadcast call.
type BroadcastResult struct {
	// Delivered counts handles that accepted the value.
	Delivered int
	// Pruned lists the IDs of handles removed because delivery failed.
	Pruned []string
}

// CallbackRegistry is a set of callback handles keyed by handle ID.
type CallbackRegistry struct {
	mu       sync.Mutex
	handles  map[string]Handle
	disabled bool

	logger *logger.Logger
}

// NewCallbackRegistry returns an empty, enabled registry.
func NewCallbackRegistry(logger *logger.Logger) *CallbackRegistry {
	return &CallbackRegistry{
		handles: make(map[string]Handle),
		logger:  logger,
	}
}

// Register adds h to the set. Registering a handle that is already present
// is a no-op. It returns ErrRegistryDisabled after Disable.
func (r *CallbackRegistry) Register(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disabled {
		return ErrRegistryDisabled
	}

	if _, ok := r.handles[h.ID()]; ok {
		return nil
	}

	r.handles[h.ID()] = h
	r.logger.Debug().Str("callback_id", h.ID()).Int("callbacks", len(r.handles)).Msg("callback registered")
	return nil
}

// Unregister removes the handle with the given ID and reports whether it was
// present.
func (r *CallbackRegistry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handles[id]; !ok {
		return false
	}

	delete(r.handles, id)
	r.logger.Debug().Str("callback_id", id).Int("callbacks", len(r.handles)).Msg("callback unregistered")
	return true
}

// Broadcast delivers value to every handle registered when the call starts.
// Handles whose delivery fails are removed once the iteration completes;
// their errors never abort delivery to the rest.
func (r *CallbackRegistry) Broadcast(ctx context.Context, value int32) BroadcastResult {
	snapshot := r.snapshot()

	var (
		result BroadcastResult
		dead   []Handle
	)
	for _, h := range snapshot {
		if err := h.Deliver(ctx, value); err != nil {
			dead = append(dead, h)
			if !errors.Is(err, ErrRemoteDisconnected) {
				r.logger.Warn().Err(err).Str("callback_id", h.ID()).Msg("callback delivery failed")
			}
			continue
		}
		result.Delivered++
	}

	if len(dead) > 0 {
		result.Pruned = r.prune(dead)
	}

	return result
}

// Disable empties the registry and makes every later Register fail. It is
// irreversible and idempotent.
func (r *CallbackRegistry) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disabled {
		return
	}

	r.disabled = true
	clear(r.handles)
	r.logger.Debug().Msg("callback registry disabled")
}

// Disabled reports whether Disable has been called.
func (r *CallbackRegistry) Disabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disabled
}

// Len returns the number of registered handles.
func (r *CallbackRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Contains reports whether a handle with the given ID is registered.
func (r *CallbackRegistry) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handles[id]
	return ok
}

func (r *CallbackRegistry) snapshot() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Handle, 0, len(r.handles))
	for _, h := range r.handles {
		out = append(out, h)
	}
	return out
}

// prune removes dead handles that are still the registered instance for
// their ID. A handle re-registered under the same ID during the broadcast is
// a new registration and stays.
func (r *CallbackRegistry) prune(dead []Handle) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := make([]string, 0, len(dead))
	for _, h := range dead {
		if cur, ok := r.handles[h.ID()]; ok && cur == h {
			delete(r.handles, h.ID())
			pruned = append(pruned, h.ID())
			r.logger.Info().Str("callback_id", h.ID()).Msg("pruned dead callback")
		}
	}
	return pruned
}
