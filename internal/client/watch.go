// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/connection"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/workers"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/sethvargo/go-retry"
)

// WatchOptions tunes [App.Watch].
type WatchOptions struct {
	// Flags are the policy flags of the primary binding.
	Flags models.PolicyFlag

	// CallbackID names the callback; random when empty.
	CallbackID string

	// Count stops the watch after that many values. Zero watches until ctx
	// ends or the binding is released.
	Count int

	// UnregisterAfter unregisters the callback once that many values have
	// arrived while keeping the binding open. Zero never unregisters.
	UnregisterAfter int

	// Out receives one line per value.
	Out io.Writer
}

// Watch binds the primary interface, registers a callback and prints every
// value it receives. The callback is registered again after each reconnect.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	w := &watcher{
		ctx:      ctx,
		app:      a,
		opts:     opts,
		looper:   NewLooper(),
		finished: make(chan struct{}),
		logger:   a.logger.WithField("command", "watch"),
	}
	w.sink = NewSink(opts.CallbackID, w.looper, w.onValue)

	return workers.New(w.looper, workers.Func(w.run)).Run(ctx)
}

// watcher fields below logger are touched on the looper goroutine only.
type watcher struct {
	ctx      context.Context
	app      *App
	opts     WatchOptions
	looper   *Looper
	sink     *Sink
	finished chan struct{}
	logger   *logger.Logger

	binding      *connection.Binding
	registeredOn string
	// backoff paces register attempts on the current session; nil when idle.
	backoff      retry.Backoff
	received     int
	unregistered bool
	done         bool
}

func (w *watcher) run(ctx context.Context) error {
	defer w.looper.Quit()

	b, err := w.app.manager.Connect(ctx, models.Primary, w.opts.Flags, w)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	defer b.Unbind()

	select {
	case <-ctx.Done():
	case <-w.finished:
	case <-b.Done():
		w.logger.Info().Msg("binding released, watch ends")
		return b.Err()
	}
	return nil
}

// OnServiceConnected implements connection.ServiceConnection.
func (w *watcher) OnServiceConnected(b *connection.Binding) {
	w.looper.Post(func() {
		w.register(b)
	})
}

// OnServiceDisconnected implements connection.ServiceConnection.
func (w *watcher) OnServiceDisconnected(b *connection.Binding) {
	w.looper.Post(func() {
		w.registeredOn = ""
		w.backoff = nil
		w.logger.Warn().Str("state", b.State().String()).Msg("server disconnected")
	})
}

// register is idempotent per server session: repeated connect events for
// the same session register once.
func (w *watcher) register(b *connection.Binding) {
	w.binding = b

	id := b.ID()
	if w.unregistered || w.done || id == "" || id == w.registeredOn {
		return
	}

	p, err := b.Primary()
	if err != nil {
		w.logger.Err(err).Msg("no primary stub")
		return
	}
	if err = p.RegisterCallback(w.ctx, w.sink); err != nil {
		w.retryRegister(b, err)
		return
	}

	w.backoff = nil
	w.registeredOn = id
	w.logger.Info().Str("binding_id", id).Str("callback_id", w.sink.CallbackID()).Msg("callback registered")
}

// retryRegister posts another register attempt after a backoff delay. A
// binding that lost its session is left alone: the next connect event
// registers again.
func (w *watcher) retryRegister(b *connection.Binding, err error) {
	if w.ctx.Err() != nil || b.State() != models.Connected {
		w.logger.Warn().Err(err).Msg("register callback failed")
		return
	}

	if w.backoff == nil {
		w.backoff = w.app.manager.Backoff()
	}
	delay, _ := w.backoff.Next()

	w.logger.Warn().Err(err).Dur("retry_in", delay).Msg("register callback failed")
	time.AfterFunc(delay, func() {
		w.looper.Post(func() {
			w.register(b)
		})
	})
}

func (w *watcher) unregister() {
	w.unregistered = true

	p, err := w.binding.Primary()
	if err != nil {
		w.logger.Err(err).Msg("no primary stub")
		return
	}
	if err = p.UnregisterCallback(w.ctx, w.sink); err != nil {
		w.logger.Warn().Err(err).Msg("unregister callback failed")
		return
	}
	w.logger.Info().Int("received", w.received).Msg("callback unregistered")
}

func (w *watcher) onValue(value int32) {
	if w.unregistered || w.done {
		return
	}

	w.received++
	fmt.Fprintf(w.opts.Out, "valueChanged %d\n", value)

	if w.opts.UnregisterAfter > 0 && w.received == w.opts.UnregisterAfter {
		w.unregister()
	}
	if w.opts.Count > 0 && w.received >= w.opts.Count {
		w.done = true
		close(w.finished)
	}
}
