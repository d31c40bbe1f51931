// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/metrics"
	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/internal/utils"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/juju/clock"
)

// BindingRecord is the server-side view of one binding.
type BindingRecord struct {
	ID        string
	Interface models.InterfaceKind
	Flags     models.PolicyFlag
	Caller    string

	core *Core
}

// Done is closed when the service instance behind the binding is destroyed.
func (b BindingRecord) Done() <-chan struct{} {
	return b.core.Done()
}

// ProcessKiller terminates the server process. It must return without
// waiting for the process to die.
type ProcessKiller func()

// HostOption customizes a [Host].
type HostOption func(*Host)

// WithClock replaces the wall clock used by service schedulers.
func WithClock(clk clock.Clock) HostOption {
	return func(h *Host) {
		h.clock = clk
	}
}

// WithProcessKiller replaces the kill-process hook.
func WithProcessKiller(killer ProcessKiller) HostOption {
	return func(h *Host) {
		h.killer = killer
	}
}

// WithPID overrides the reported process id.
func WithPID(pid int) HostOption {
	return func(h *Host) {
		h.pid = pid
	}
}

// Host plays the part of the process hosting the service. It creates the
// service instance on demand, tracks bindings and the started mark, and
// destroys the instance once nobody needs it.
type Host struct {
	cfg     config.Service
	version string
	clock   clock.Clock
	killer  ProcessKiller
	pid     int
	ids     *utils.UUIDGenerator
	metrics *metrics.Metrics
	logger  *logger.Logger

	mu       sync.Mutex
	core     *Core
	started  bool
	startID  int
	bindings map[string]BindingRecord
	priority models.PolicyFlag
}

// NewHost builds a host with no service instance.
func NewHost(cfg config.Service, version string, m *metrics.Metrics, logger *logger.Logger, opts ...HostOption) *Host {
	h := &Host{
		cfg:      cfg,
		version:  version,
		clock:    clock.WallClock,
		pid:      os.Getpid(),
		ids:      utils.NewUUIDGenerator(),
		metrics:  m,
		logger:   logger,
		bindings: make(map[string]BindingRecord),
	}
	h.killer = h.exitProcess

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Start implements LifecycleService.
func (h *Host) Start(_ context.Context, req models.StartRequest) (models.StartResponse, error) {
	h.mu.Lock()
	core := h.ensureCoreLocked()
	h.started = true
	h.startID++
	startID := h.startID
	h.mu.Unlock()

	core.OnStartCommand(startID, req)

	return models.StartResponse{StartID: startID, Counter: core.Counter()}, nil
}

// Stop implements LifecycleService.
func (h *Host) Stop(_ context.Context, req models.StopRequest) error {
	h.mu.Lock()
	h.started = false
	idle := h.detachIfIdleLocked()
	h.mu.Unlock()

	h.logger.Info().Str("caller", req.Caller).Msg("received stop command")
	if idle != nil {
		idle.OnDestroy()
	}

	return nil
}

// Bind implements LifecycleService.
func (h *Host) Bind(_ context.Context, req models.BindRequest) (BindingRecord, error) {
	kind, err := models.ParseInterfaceKind(req.Interface)
	if err != nil {
		h.logger.Warn().Str("interface", req.Interface).Msg("bind to unknown interface rejected")
		return BindingRecord{}, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.core == nil && !req.Flags.Has(models.AutoCreate) {
		return BindingRecord{}, ErrServiceNotCreated
	}

	rec := BindingRecord{
		ID:        h.ids.Generate(),
		Interface: kind,
		Flags:     req.Flags,
		Caller:    req.Caller,
		core:      h.ensureCoreLocked(),
	}
	h.bindings[rec.ID] = rec
	h.updatePriorityLocked()
	h.metrics.Bindings.WithLabelValues(string(kind)).Inc()

	h.logger.Info().
		Str("binding_id", rec.ID).
		Str("interface", string(kind)).
		Stringer("flags", req.Flags).
		Int("bind_count", len(h.bindings)).
		Msg("client bound")

	return rec, nil
}

// Unbind implements LifecycleService.
func (h *Host) Unbind(_ context.Context, bindingID string) {
	h.mu.Lock()
	rec, ok := h.bindings[bindingID]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.bindings, bindingID)
	h.updatePriorityLocked()
	h.metrics.Bindings.WithLabelValues(string(rec.Interface)).Dec()
	bindCount := len(h.bindings)
	idle := h.detachIfIdleLocked()
	h.mu.Unlock()

	h.logger.Info().
		Str("binding_id", bindingID).
		Int("bind_count", bindCount).
		Msg("client unbound")

	if idle != nil {
		idle.OnDestroy()
	}
}

// Status implements LifecycleService.
func (h *Host) Status(_ context.Context) models.ServerStatus {
	h.mu.Lock()
	defer h.mu.Unlock()

	status := models.ServerStatus{
		PID:      h.pid,
		Version:  h.version,
		State:    models.Destroyed,
		Started:  h.started,
		Bindings: len(h.bindings),
		Priority: h.priority.String(),
	}
	if h.core != nil {
		status.Alive = true
		status.State = h.core.State()
		status.Counter = h.core.Counter()
		status.Callbacks = h.core.Callbacks()
	}

	return status
}

// BindCount returns the number of live bindings.
func (h *Host) BindCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.bindings)
}

// Priority returns the union of the policy flags of all live bindings.
func (h *Host) Priority() models.PolicyFlag {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.priority
}

// RegisterCallback implements PrimaryService.
func (h *Host) RegisterCallback(ctx context.Context, bindingID string, handle registry.Handle) error {
	rec, err := h.binding(bindingID, models.Primary)
	if err != nil {
		return err
	}

	return rec.core.RegisterCallback(ctx, handle)
}

// UnregisterCallback implements PrimaryService.
func (h *Host) UnregisterCallback(ctx context.Context, bindingID, handleID string) error {
	rec, err := h.binding(bindingID, models.Primary)
	if err != nil {
		return err
	}

	return rec.core.UnregisterCallback(ctx, handleID)
}

// GetServerProcessID implements SecondaryService.
func (h *Host) GetServerProcessID(_ context.Context, bindingID string) (int32, error) {
	if _, err := h.binding(bindingID, models.Secondary); err != nil {
		return 0, err
	}

	return int32(h.pid), nil
}

// ExerciseTypes implements SecondaryService.
func (h *Host) ExerciseTypes(_ context.Context, req models.ExerciseTypesRequest) error {
	if _, err := h.binding(req.BindingID, models.Secondary); err != nil {
		return err
	}

	h.logger.Debug().
		Int32("i32", req.Int32).
		Int64("i64", req.Int64).
		Bool("b", req.Bool).
		Float32("f32", req.Float32).
		Float64("f64", req.Float64).
		Str("s", req.String).
		Msg("exercise types")

	return nil
}

// KillProcess implements SecondaryService.
func (h *Host) KillProcess(_ context.Context, bindingID string) error {
	if _, err := h.binding(bindingID, models.Secondary); err != nil {
		return err
	}

	h.logger.Warn().Str("binding_id", bindingID).Int("pid", h.pid).Msg("kill-process requested")
	h.metrics.Lifecycle.WithLabelValues("kill").Inc()
	h.killer()

	return nil
}

// Shutdown destroys the service instance regardless of bindings. It is
// called when the server process exits.
func (h *Host) Shutdown() {
	h.mu.Lock()
	core := h.core
	h.core = nil
	h.started = false
	clear(h.bindings)
	h.updatePriorityLocked()
	h.metrics.Bindings.Reset()
	h.mu.Unlock()

	if core != nil {
		core.OnDestroy()
	}
}

func (h *Host) binding(id string, kind models.InterfaceKind) (BindingRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec, ok := h.bindings[id]
	if !ok {
		return BindingRecord{}, ErrBindingNotFound
	}
	if rec.Interface != kind {
		return BindingRecord{}, ErrWrongInterface
	}

	return rec, nil
}

func (h *Host) ensureCoreLocked() *Core {
	if h.core != nil {
		return h.core
	}

	h.core = NewCore(h.cfg.TickInterval, h.clock, h.metrics, h.logger.WithField("instance", h.ids.Generate()))
	h.core.OnCreate()
	return h.core
}

func (h *Host) detachIfIdleLocked() *Core {
	if h.core == nil || h.started || len(h.bindings) > 0 {
		return nil
	}

	core := h.core
	h.core = nil
	return core
}

func (h *Host) updatePriorityLocked() {
	var union models.PolicyFlag
	for _, rec := range h.bindings {
		union |= rec.Flags
	}

	if union == h.priority {
		return
	}

	h.priority = union
	h.metrics.SetPriority(union)
	h.logger.Info().Stringer("priority", union).Msg("process priority hint changed")
}

func (h *Host) exitProcess() {
	time.AfterFunc(h.cfg.KillDelay, func() {
		os.Exit(1)
	})
}
