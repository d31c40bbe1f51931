// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/metrics"
	"github.com/MKhiriev/go-remote-service/internal/registry"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/juju/clock"
	"github.com/juju/clock/testclock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testInterval = time.Second
	shortWait    = 2 * time.Second
)

// recordingHandle is a registry.Handle that stores every delivered value.
type recordingHandle struct {
	id string

	mu     sync.Mutex
	values []int32
	dead   bool
}

func newRecordingHandle(id string) *recordingHandle {
	return &recordingHandle{id: id}
}

func (h *recordingHandle) ID() string { return h.id }

func (h *recordingHandle) Deliver(_ context.Context, value int32) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dead {
		return registry.ErrRemoteDisconnected
	}
	h.values = append(h.values, value)
	return nil
}

func (h *recordingHandle) disconnect() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dead = true
}

func (h *recordingHandle) received() []int32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]int32(nil), h.values...)
}

func newTestCore(t *testing.T, clk clock.Clock) (*Core, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewNop()
	c := NewCore(testInterval, clk, m, logger.Nop())
	t.Cleanup(c.OnDestroy)
	return c, m
}

// tick advances the test clock by one interval once the scheduler timer is
// armed.
func tick(t *testing.T, clk *testclock.Clock) {
	t.Helper()
	require.NoError(t, clk.WaitAdvance(testInterval, shortWait, 1))
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestCore_NewIsCreated(t *testing.T) {
	c, _ := newTestCore(t, testclock.NewClock(time.Now()))
	assert.Equal(t, models.Created, c.State())
	assert.Zero(t, c.Counter())
}

func TestCore_OnCreateRuns(t *testing.T) {
	c, _ := newTestCore(t, testclock.NewClock(time.Now()))
	c.OnCreate()
	assert.Equal(t, models.Running, c.State())

	// repeated create is a no-op
	assert.NotPanics(t, c.OnCreate)
	assert.Equal(t, models.Running, c.State())
}

func TestCore_OnDestroyWithoutCreate(t *testing.T) {
	c, _ := newTestCore(t, testclock.NewClock(time.Now()))
	c.OnDestroy()

	assert.Equal(t, models.Destroyed, c.State())
	select {
	case <-c.Done():
	default:
		t.Fatal("Done must be closed after OnDestroy")
	}

	// a destroyed core never starts
	c.OnCreate()
	assert.Equal(t, models.Destroyed, c.State())
}

func TestCore_OnDestroyIdempotent(t *testing.T) {
	c, _ := newTestCore(t, testclock.NewClock(time.Now()))
	c.OnCreate()
	c.OnDestroy()
	assert.NotPanics(t, c.OnDestroy)
}

// ── scheduler ────────────────────────────────────────────────────────────────

func TestCore_TickIncrementsByOneAndBroadcasts(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	c, m := newTestCore(t, clk)
	c.OnCreate()

	h := newRecordingHandle("h")
	require.NoError(t, c.RegisterCallback(context.Background(), h))

	for i := 0; i < 3; i++ {
		tick(t, clk)
	}

	require.Eventually(t, func() bool { return len(h.received()) == 3 }, shortWait, 5*time.Millisecond)
	assert.Equal(t, []int32{1, 2, 3}, h.received())
	assert.Equal(t, int32(3), c.Counter())
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Ticks))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Deliveries))
}

func TestCore_RunsWithoutRegistrations(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	c, _ := newTestCore(t, clk)
	c.OnCreate()

	tick(t, clk)
	tick(t, clk)

	require.Eventually(t, func() bool { return c.Counter() == 2 }, shortWait, 5*time.Millisecond)
}

func TestCore_NoTickAfterDestroy(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	c, _ := newTestCore(t, clk)
	c.OnCreate()

	h := newRecordingHandle("h")
	require.NoError(t, c.RegisterCallback(context.Background(), h))

	tick(t, clk)
	tick(t, clk)
	require.Eventually(t, func() bool { return c.Counter() == 2 }, shortWait, 5*time.Millisecond)

	c.OnDestroy()
	before := c.Counter()

	clk.Advance(10 * testInterval)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, before, c.Counter())
	assert.Equal(t, models.Destroyed, c.State())
	assert.Equal(t, []int32{1, 2}, h.received())
}

func TestCore_AdvanceYieldsToTeardown(t *testing.T) {
	t.Run("stepping while live", func(t *testing.T) {
		c, _ := newTestCore(t, testclock.NewClock(time.Now()))
		value, ok := c.advance()
		assert.True(t, ok)
		assert.EqualValues(t, 1, value)
	})

	t.Run("teardown begun", func(t *testing.T) {
		c, _ := newTestCore(t, testclock.NewClock(time.Now()))
		c.stopping.Store(true)

		_, ok := c.advance()
		assert.False(t, ok)
		assert.Zero(t, c.Counter())
	})

	t.Run("stop requested with timer pending", func(t *testing.T) {
		c, _ := newTestCore(t, testclock.NewClock(time.Now()))
		close(c.stop)

		_, ok := c.advance()
		assert.False(t, ok)
		assert.Zero(t, c.Counter())
	})
}

func TestCore_PrunesDisconnectedHandleOnTick(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	c, m := newTestCore(t, clk)
	c.OnCreate()

	alive, dead := newRecordingHandle("alive"), newRecordingHandle("dead")
	dead.disconnect()
	require.NoError(t, c.RegisterCallback(context.Background(), alive))
	require.NoError(t, c.RegisterCallback(context.Background(), dead))
	require.Equal(t, 2, c.Callbacks())

	tick(t, clk)

	require.Eventually(t, func() bool { return c.Callbacks() == 1 }, shortWait, 5*time.Millisecond)
	assert.Equal(t, []int32{1}, alive.received())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PrunedHandles))
}

func TestCore_UnregisterStopsDelivery(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	c, _ := newTestCore(t, clk)
	c.OnCreate()
	ctx := context.Background()

	h := newRecordingHandle("h")
	require.NoError(t, c.RegisterCallback(ctx, h))
	tick(t, clk)
	require.Eventually(t, func() bool { return len(h.received()) == 1 }, shortWait, 5*time.Millisecond)

	require.NoError(t, c.UnregisterCallback(ctx, "h"))
	tick(t, clk)
	tick(t, clk)
	require.Eventually(t, func() bool { return c.Counter() == 3 }, shortWait, 5*time.Millisecond)
	assert.Equal(t, []int32{1}, h.received())

	// re-registering resumes from the next tick
	require.NoError(t, c.RegisterCallback(ctx, h))
	tick(t, clk)
	require.Eventually(t, func() bool { return len(h.received()) == 2 }, shortWait, 5*time.Millisecond)
	assert.Equal(t, []int32{1, 4}, h.received())
}

func TestCore_RegisterIsIdempotent(t *testing.T) {
	c, _ := newTestCore(t, testclock.NewClock(time.Now()))
	c.OnCreate()
	ctx := context.Background()

	h := newRecordingHandle("h")
	require.NoError(t, c.RegisterCallback(ctx, h))
	require.NoError(t, c.RegisterCallback(ctx, h))

	assert.Equal(t, 1, c.Callbacks())
}

func TestCore_CallsAfterDestroyFail(t *testing.T) {
	c, _ := newTestCore(t, testclock.NewClock(time.Now()))
	c.OnCreate()
	c.OnDestroy()

	err := c.RegisterCallback(context.Background(), newRecordingHandle("h"))
	assert.ErrorIs(t, err, ErrServiceDestroyed)
	assert.ErrorIs(t, c.UnregisterCallback(context.Background(), "h"), ErrServiceDestroyed)
	assert.Zero(t, c.Callbacks())
}

func TestCore_WallClockMonotonic(t *testing.T) {
	m := metrics.NewNop()
	c := NewCore(10*time.Millisecond, clock.WallClock, m, logger.Nop())
	h := newRecordingHandle("h")
	c.OnCreate()
	require.NoError(t, c.RegisterCallback(context.Background(), h))

	require.Eventually(t, func() bool { return len(h.received()) >= 5 }, shortWait, 5*time.Millisecond)
	c.OnDestroy()

	got := h.received()
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1]+1, got[i], "values must increase by exactly one")
	}

	final := c.Counter()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, final, c.Counter())
	assert.Len(t, h.received(), len(got))
}
