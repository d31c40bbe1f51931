// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-remote-service/models"
)

// Primary is the client stub of the callback registration interface.
type Primary struct {
	binding *Binding
}

// RegisterCallback routes deliveries for cb on this binding and asks the
// server to start delivering. Registering the same callback again is
// harmless; it has to be repeated after every reconnect.
func (p *Primary) RegisterCallback(ctx context.Context, cb Callback) error {
	b := p.binding
	id := cb.CallbackID()
	if id == "" {
		return ErrEmptyCallbackID
	}

	bindingID, err := b.connectedID()
	if err != nil {
		return err
	}

	b.mu.Lock()
	_, existed := b.callbacks[id]
	b.callbacks[id] = cb
	b.mu.Unlock()

	if err = b.manager.adapter.RegisterCallback(ctx, bindingID, id); err != nil {
		if !existed {
			b.mu.Lock()
			delete(b.callbacks, id)
			b.mu.Unlock()
		}
		return err
	}

	b.logger.Debug().Str("callback_id", id).Msg("callback registered")
	return nil
}

// UnregisterCallback stops deliveries to cb. Once it returns cb receives no
// further values, even if the server call fails.
func (p *Primary) UnregisterCallback(ctx context.Context, cb Callback) error {
	b := p.binding
	id := cb.CallbackID()

	b.mu.Lock()
	delete(b.callbacks, id)
	b.mu.Unlock()

	bindingID, err := b.connectedID()
	if errors.Is(err, ErrNotConnected) {
		// the server dropped every callback of the old session already
		return nil
	}

	if err = b.manager.adapter.UnregisterCallback(ctx, bindingID, id); err != nil {
		return err
	}

	b.logger.Debug().Str("callback_id", id).Msg("callback unregistered")
	return nil
}

// Secondary is the client stub of the process id / type exercise interface.
type Secondary struct {
	binding *Binding
}

// GetServerProcessID returns the pid of the server process.
func (s *Secondary) GetServerProcessID(ctx context.Context) (int32, error) {
	bindingID, err := s.binding.connectedID()
	if err != nil {
		return 0, err
	}
	return s.binding.manager.adapter.GetServerProcessID(ctx, bindingID)
}

// ExerciseTypes sends one value of every primitive kind.
func (s *Secondary) ExerciseTypes(ctx context.Context, i32 int32, i64 int64, b bool, f32 float32, f64 float64, str string) error {
	bindingID, err := s.binding.connectedID()
	if err != nil {
		return err
	}
	return s.binding.manager.adapter.ExerciseTypes(ctx, models.ExerciseTypesRequest{
		BindingID: bindingID,
		Int32:     i32,
		Int64:     i64,
		Bool:      b,
		Float32:   f32,
		Float64:   f64,
		String:    str,
	})
}

// KillProcess asks the server process to terminate itself. Bindings observe
// the crash as a disconnect.
func (s *Secondary) KillProcess(ctx context.Context) error {
	bindingID, err := s.binding.connectedID()
	if err != nil {
		return err
	}
	return s.binding.manager.adapter.KillProcess(ctx, bindingID)
}
