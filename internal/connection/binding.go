// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-remote-service/internal/adapter"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/sethvargo/go-retry"
)

// Binding is one client session on one server interface.
type Binding struct {
	manager *Manager
	kind    models.InterfaceKind
	flags   models.PolicyFlag
	conn    ServiceConnection
	logger  *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.Mutex
	state     models.ConnectionState
	changed   chan struct{}
	bindingID string
	pid       int32
	connects  int
	err       error
	callbacks map[string]Callback
}

func newBinding(m *Manager, kind models.InterfaceKind, flags models.PolicyFlag, conn ServiceConnection) *Binding {
	ctx, cancel := context.WithCancel(m.ctx)

	return &Binding{
		manager:   m,
		kind:      kind,
		flags:     flags,
		conn:      conn,
		logger:    m.logger.WithField("interface", string(kind)),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		state:     models.Binding,
		changed:   make(chan struct{}),
		callbacks: make(map[string]Callback),
	}
}

// Kind returns the interface the binding talks to.
func (b *Binding) Kind() models.InterfaceKind { return b.kind }

// Flags returns the policy flags the binding was opened with.
func (b *Binding) Flags() models.PolicyFlag { return b.flags }

// State returns the current connection state.
func (b *Binding) State() models.ConnectionState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// ID returns the server-side id of the current session, empty while not
// connected. It changes on every reconnect.
func (b *Binding) ID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bindingID
}

// PID returns the server process id reported on the last connect.
func (b *Binding) PID() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pid
}

// Connects returns how many times the binding has connected.
func (b *Binding) Connects() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connects
}

// Err returns the error that released the binding, if any.
func (b *Binding) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Done is closed once the binding is released.
func (b *Binding) Done() <-chan struct{} {
	return b.done
}

// WaitState blocks until the binding reaches state or ctx ends. Waiting for
// anything but Unbound on a released binding fails with ErrNotConnected.
func (b *Binding) WaitState(ctx context.Context, state models.ConnectionState) error {
	for {
		b.mu.Lock()
		cur, changed := b.state, b.changed
		b.mu.Unlock()

		if cur == state {
			return nil
		}
		if cur == models.Unbound {
			return ErrNotConnected
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Unbind releases the binding and waits for its goroutine to exit. It is
// safe to call more than once and from any goroutine except the binding's
// own callbacks.
func (b *Binding) Unbind() {
	b.cancel()
	<-b.done
}

// Primary returns the callback registration stub.
func (b *Binding) Primary() (*Primary, error) {
	if b.kind != models.Primary {
		return nil, ErrWrongInterface
	}
	return &Primary{binding: b}, nil
}

// Secondary returns the process id / type exercise stub.
func (b *Binding) Secondary() (*Secondary, error) {
	if b.kind != models.Secondary {
		return nil, ErrWrongInterface
	}
	return &Secondary{binding: b}, nil
}

func (b *Binding) setStateLocked(state models.ConnectionState) {
	if b.state == state {
		return
	}
	b.state = state
	close(b.changed)
	b.changed = make(chan struct{})
}

func (b *Binding) connectedID() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != models.Connected {
		return "", ErrNotConnected
	}
	return b.bindingID, nil
}

// run drives the binding until it is released. first receives the outcome
// of the first bind attempt.
func (b *Binding) run(first chan<- error) {
	defer close(b.done)
	defer b.manager.forget(b)

	var reported bool
	report := func(err error) {
		if !reported {
			reported = true
			first <- err
		}
	}

	for {
		session, err := b.connect(report)
		if err != nil {
			if b.ctx.Err() != nil {
				err = nil
			}
			report(err)
			b.release(err)
			return
		}
		b.onConnected(session.connected, report)
		err = b.pump(session.stream)
		session.cancel()

		if b.ctx.Err() != nil {
			b.release(nil)
			return
		}

		b.onDisconnected(err)
		if b.flags.Has(models.WaivePriority) {
			b.logger.Info().Msg("server gone, releasing waive-priority binding")
			b.release(nil)
			return
		}
	}
}

type bindSession struct {
	stream    adapter.BindStream
	connected models.BindEvent
	cancel    context.CancelFunc
}

// connect binds with exponential backoff until the server accepts, the
// failure is permanent, or the binding is released.
func (b *Binding) connect(report func(error)) (bindSession, error) {
	req := models.BindRequest{Interface: string(b.kind), Flags: b.flags, Caller: b.manager.caller}

	return retry.DoValue(b.ctx, b.manager.Backoff(), func(ctx context.Context) (bindSession, error) {
		sessionCtx, cancel := context.WithCancel(ctx)

		stream, err := b.manager.adapter.Bind(sessionCtx, req)
		var ev models.BindEvent
		if err == nil {
			ev, err = stream.Recv()
		}
		if err == nil && ev.Type != models.EventConnected {
			err = fmt.Errorf("%w: %d", ErrUnexpectedEvent, ev.Type)
		}

		if err != nil {
			cancel()
			if retryable(err) {
				report(nil)
				b.logger.Debug().Err(err).Msg("bind attempt failed, retrying")
				return bindSession{}, retry.RetryableError(err)
			}
			return bindSession{}, err
		}

		return bindSession{stream: stream, connected: ev, cancel: cancel}, nil
	})
}

// pump routes deliveries to callbacks until the stream fails.
func (b *Binding) pump(stream adapter.BindStream) error {
	for {
		ev, err := stream.Recv()
		if err != nil {
			return err
		}

		if ev.Type != models.EventValueChanged {
			b.logger.Debug().Int("type", int(ev.Type)).Msg("ignoring binding event")
			continue
		}

		b.mu.Lock()
		cb, ok := b.callbacks[ev.CallbackID]
		b.mu.Unlock()

		if !ok {
			b.logger.Debug().Str("callback_id", ev.CallbackID).Msg("delivery for unknown callback dropped")
			continue
		}
		cb.ValueChanged(ev.Value)
	}
}

// onConnected publishes the new session before report so that Connect
// returns a binding that is already usable.
func (b *Binding) onConnected(ev models.BindEvent, report func(error)) {
	b.mu.Lock()
	b.bindingID = ev.BindingID
	b.pid = ev.PID
	b.connects++
	b.setStateLocked(models.Connected)
	connects := b.connects
	b.mu.Unlock()
	report(nil)

	b.logger.Info().
		Str("binding_id", ev.BindingID).
		Int32("pid", ev.PID).
		Int("connects", connects).
		Msg("service connected")

	if b.conn != nil {
		b.conn.OnServiceConnected(b)
	}
}

func (b *Binding) onDisconnected(err error) {
	b.mu.Lock()
	b.bindingID = ""
	b.setStateLocked(models.Disconnected)
	b.mu.Unlock()

	b.logger.Warn().Err(err).Msg("service disconnected")

	if b.conn != nil {
		b.conn.OnServiceDisconnected(b)
	}
}

func (b *Binding) release(err error) {
	b.cancel()

	b.mu.Lock()
	b.bindingID = ""
	b.err = err
	clear(b.callbacks)
	b.setStateLocked(models.Unbound)
	b.mu.Unlock()

	if err != nil {
		b.logger.Warn().Err(err).Msg("binding released")
		return
	}
	b.logger.Info().Msg("binding released")
}
