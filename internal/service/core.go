// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/metrics"
	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/juju/clock"
)

// Core is one service instance. It owns the counter and the callback
// registry and is driven by a single goroutine: scheduler ticks and every
// inbound call that touches its state run there, one at a time.
//
// Lifecycle: Created (NewCore) -> Running (OnCreate) -> Destroyed (OnDestroy).
type Core struct {
	interval time.Duration
	clock    clock.Clock
	registry *registry.CallbackRegistry
	metrics  *metrics.Metrics
	logger   *logger.Logger

	mailbox chan func(ctx context.Context)
	stop    chan struct{}
	done    chan struct{}

	createOnce  sync.Once
	destroyOnce sync.Once
	// tickMu orders a tick's counter step against the start of teardown.
	tickMu   sync.Mutex
	stopping atomic.Bool

	// written by the loop goroutine only
	state   atomic.Int32
	counter atomic.Int32
}

// NewCore returns a core in the Created state. Nothing runs until OnCreate.
func NewCore(interval time.Duration, clk clock.Clock, m *metrics.Metrics, logger *logger.Logger) *Core {
	c := &Core{
		interval: interval,
		clock:    clk,
		registry: registry.NewCallbackRegistry(logger),
		metrics:  m,
		logger:   logger,
		mailbox:  make(chan func(ctx context.Context)),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	c.state.Store(int32(models.Created))
	return c
}

// OnCreate moves the core to Running and starts the tick loop. Calls after
// the first are no-ops.
func (c *Core) OnCreate() {
	c.createOnce.Do(func() {
		if c.stopping.Load() {
			return
		}
		c.state.Store(int32(models.Running))
		c.metrics.Lifecycle.WithLabelValues("create").Inc()
		c.logger.Info().Dur("interval", c.interval).Msg("service created, scheduler running")
		go c.loop()
	})
}

// OnStartCommand records an explicit start request. It only logs; the
// scheduler runs whether or not the service was ever started.
func (c *Core) OnStartCommand(startID int, req models.StartRequest) {
	c.metrics.Lifecycle.WithLabelValues("start").Inc()
	c.logger.Info().
		Int("start_id", startID).
		Str("caller", req.Caller).
		Str("reason", req.Reason).
		Msg("received start command")
}

// OnDestroy begins teardown: no tick fires once it has been called. It
// blocks until the loop has exited and the registry is disabled.
func (c *Core) OnDestroy() {
	c.destroyOnce.Do(func() {
		c.tickMu.Lock()
		c.stopping.Store(true)
		c.tickMu.Unlock()
		c.metrics.Lifecycle.WithLabelValues("destroy").Inc()

		// make sure a core that never ran still ends up destroyed
		c.createOnce.Do(func() {})
		if models.ServiceState(c.state.Load()) != models.Running {
			c.finish()
			close(c.done)
			return
		}

		close(c.stop)
		<-c.done
	})
}

// State returns the lifecycle state.
func (c *Core) State() models.ServiceState {
	return models.ServiceState(c.state.Load())
}

// Counter returns the last value produced by the scheduler.
func (c *Core) Counter() int32 {
	return c.counter.Load()
}

// Callbacks returns the number of registered callback handles.
func (c *Core) Callbacks() int {
	return c.registry.Len()
}

// Done is closed once the core is destroyed.
func (c *Core) Done() <-chan struct{} {
	return c.done
}

// RegisterCallback adds h to the registry on the core goroutine.
func (c *Core) RegisterCallback(ctx context.Context, h registry.Handle) error {
	var err error
	if doErr := c.do(ctx, func(context.Context) {
		err = c.registry.Register(h)
		c.metrics.Callbacks.Set(float64(c.registry.Len()))
	}); doErr != nil {
		return doErr
	}
	return err
}

// UnregisterCallback removes the handle with id on the core goroutine.
func (c *Core) UnregisterCallback(ctx context.Context, id string) error {
	return c.do(ctx, func(context.Context) {
		c.registry.Unregister(id)
		c.metrics.Callbacks.Set(float64(c.registry.Len()))
	})
}

// do runs fn on the core goroutine and waits for it to finish.
func (c *Core) do(ctx context.Context, fn func(ctx context.Context)) error {
	if c.stopping.Load() {
		return ErrServiceDestroyed
	}

	finished := make(chan struct{})
	task := func(ctx context.Context) {
		defer close(finished)
		fn(ctx)
	}

	select {
	case c.mailbox <- task:
	case <-c.done:
		return ErrServiceDestroyed
	case <-ctx.Done():
		return ctx.Err()
	}

	// an accepted task always runs before the loop can exit
	<-finished
	return nil
}

func (c *Core) loop() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	timer := c.clock.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-c.stop:
			cancel()
			c.finish()
			close(c.done)
			return
		case task := <-c.mailbox:
			task(ctx)
		case <-timer.Chan():
			value, ok := c.advance()
			if !ok {
				continue
			}
			c.tick(ctx, value)
			timer.Reset(c.interval)
		}
	}
}

// advance steps the counter unless teardown has begun. A stop request wins
// over a timer that fired at the same time.
func (c *Core) advance() (int32, bool) {
	c.tickMu.Lock()
	defer c.tickMu.Unlock()

	if c.stopping.Load() {
		return 0, false
	}
	select {
	case <-c.stop:
		return 0, false
	default:
	}
	return c.counter.Add(1), true
}

func (c *Core) tick(ctx context.Context, value int32) {
	res := c.registry.Broadcast(ctx, value)

	c.metrics.Ticks.Inc()
	c.metrics.CounterValue.Set(float64(value))
	c.metrics.Deliveries.Add(float64(res.Delivered))
	c.metrics.PrunedHandles.Add(float64(len(res.Pruned)))
	c.metrics.Callbacks.Set(float64(c.registry.Len()))

	c.logger.Debug().
		Int32("value", value).
		Int("delivered", res.Delivered).
		Int("pruned", len(res.Pruned)).
		Msg("tick")
}

func (c *Core) finish() {
	c.state.Store(int32(models.Destroyed))
	c.registry.Disable()
	c.metrics.Callbacks.Set(0)
	c.logger.Info().Int32("counter", c.counter.Load()).Msg("service destroyed")
}
