// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeHandle records delivered values and can be switched into a
// disconnected state.
type fakeHandle struct {
	id string

	mu        sync.Mutex
	values    []int32
	deadErr   error
	onDeliver func()
}

func newFakeHandle(id string) *fakeHandle {
	return &fakeHandle{id: id}
}

func (f *fakeHandle) ID() string { return f.id }

func (f *fakeHandle) Deliver(_ context.Context, value int32) error {
	if f.onDeliver != nil {
		f.onDeliver()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deadErr != nil {
		return f.deadErr
	}
	f.values = append(f.values, value)
	return nil
}

func (f *fakeHandle) kill(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deadErr = err
}

func (f *fakeHandle) received() []int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int32(nil), f.values...)
}

func newTestRegistry() *CallbackRegistry {
	return NewCallbackRegistry(logger.Nop())
}

// ── Register / Unregister ────────────────────────────────────────────────────

func TestRegister_AddsHandle(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register(newFakeHandle("a")))

	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains("a"))
}

func TestRegister_Idempotent(t *testing.T) {
	r := newTestRegistry()
	h := newFakeHandle("a")

	require.NoError(t, r.Register(h))
	require.NoError(t, r.Register(h))
	require.NoError(t, r.Register(newFakeHandle("a")))

	assert.Equal(t, 1, r.Len())

	res := r.Broadcast(context.Background(), 7)
	assert.Equal(t, 1, res.Delivered)
	assert.Equal(t, []int32{7}, h.received())
}

func TestUnregister_RemovesHandle(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register(newFakeHandle("a")))

	assert.True(t, r.Unregister("a"))
	assert.Zero(t, r.Len())
}

func TestUnregister_AbsentIsNoop(t *testing.T) {
	r := newTestRegistry()
	assert.False(t, r.Unregister("missing"))
}

// ── Broadcast ────────────────────────────────────────────────────────────────

func TestBroadcast_Empty(t *testing.T) {
	r := newTestRegistry()
	res := r.Broadcast(context.Background(), 1)

	assert.Zero(t, res.Delivered)
	assert.Empty(t, res.Pruned)
}

func TestBroadcast_DeliversExactlyOnceToEveryHandle(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			r := newTestRegistry()
			handles := make([]*fakeHandle, n)
			for i := range handles {
				handles[i] = newFakeHandle(fmt.Sprintf("h-%d", i))
				require.NoError(t, r.Register(handles[i]))
			}

			res := r.Broadcast(context.Background(), 42)

			assert.Equal(t, n, res.Delivered)
			for _, h := range handles {
				assert.Equal(t, []int32{42}, h.received())
			}
		})
	}
}

func TestBroadcast_UnregisteredHandleGetsNothing(t *testing.T) {
	r := newTestRegistry()
	a, b := newFakeHandle("a"), newFakeHandle("b")
	require.NoError(t, r.Register(a))
	require.NoError(t, r.Register(b))

	r.Broadcast(context.Background(), 1)
	r.Unregister("a")
	r.Broadcast(context.Background(), 2)

	assert.Equal(t, []int32{1}, a.received())
	assert.Equal(t, []int32{1, 2}, b.received())
}

func TestBroadcast_ReRegisterResumesDelivery(t *testing.T) {
	r := newTestRegistry()
	a := newFakeHandle("a")
	require.NoError(t, r.Register(a))

	r.Broadcast(context.Background(), 1)
	r.Unregister("a")
	r.Broadcast(context.Background(), 2)
	require.NoError(t, r.Register(a))
	r.Broadcast(context.Background(), 3)

	assert.Equal(t, []int32{1, 3}, a.received())
}

func TestBroadcast_PrunesDisconnectedHandle(t *testing.T) {
	r := newTestRegistry()
	alive1, dead, alive2 := newFakeHandle("alive-1"), newFakeHandle("dead"), newFakeHandle("alive-2")
	dead.kill(ErrRemoteDisconnected)
	for _, h := range []*fakeHandle{alive1, dead, alive2} {
		require.NoError(t, r.Register(h))
	}

	res := r.Broadcast(context.Background(), 5)

	assert.Equal(t, 2, res.Delivered)
	assert.Equal(t, []string{"dead"}, res.Pruned)
	assert.False(t, r.Contains("dead"))
	assert.Equal(t, []int32{5}, alive1.received())
	assert.Equal(t, []int32{5}, alive2.received())
}

func TestBroadcast_PrunesOnAnyDeliveryError(t *testing.T) {
	r := newTestRegistry()
	h := newFakeHandle("flaky")
	h.kill(errors.New("boom"))
	require.NoError(t, r.Register(h))

	res := r.Broadcast(context.Background(), 1)

	assert.Equal(t, []string{"flaky"}, res.Pruned)
	assert.Zero(t, r.Len())
}

func TestBroadcast_SnapshotIgnoresConcurrentRegistration(t *testing.T) {
	r := newTestRegistry()
	late := newFakeHandle("late")
	first := newFakeHandle("first")
	first.onDeliver = func() {
		// registry lock must not be held while delivering
		require.NoError(t, r.Register(late))
	}
	require.NoError(t, r.Register(first))

	res := r.Broadcast(context.Background(), 1)

	assert.Equal(t, 1, res.Delivered)
	assert.Empty(t, late.received())
	assert.True(t, r.Contains("late"))

	r.Broadcast(context.Background(), 2)
	assert.Equal(t, []int32{2}, late.received())
}

func TestBroadcast_UnregisterDuringBroadcastDoesNotCrash(t *testing.T) {
	r := newTestRegistry()
	a, b := newFakeHandle("a"), newFakeHandle("b")
	a.onDeliver = func() { r.Unregister("b") }
	b.onDeliver = func() { r.Unregister("a") }
	require.NoError(t, r.Register(a))
	require.NoError(t, r.Register(b))

	assert.NotPanics(t, func() { r.Broadcast(context.Background(), 1) })
}

func TestBroadcast_KeepsHandleReRegisteredUnderSameID(t *testing.T) {
	r := newTestRegistry()
	old := newFakeHandle("same")
	old.kill(ErrRemoteDisconnected)
	replacement := newFakeHandle("same")
	old.onDeliver = func() {
		r.Unregister("same")
		require.NoError(t, r.Register(replacement))
	}
	require.NoError(t, r.Register(old))

	res := r.Broadcast(context.Background(), 1)

	assert.Empty(t, res.Pruned)
	assert.True(t, r.Contains("same"))
}

func TestBroadcast_ConcurrentMutation(t *testing.T) {
	r := newTestRegistry()
	for i := 0; i < 20; i++ {
		require.NoError(t, r.Register(newFakeHandle(fmt.Sprintf("base-%d", i))))
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := fmt.Sprintf("churn-%d-%d", i, j)
				_ = r.Register(newFakeHandle(id))
				r.Unregister(id)
			}
		}(i)
	}
	for v := int32(0); v < 50; v++ {
		r.Broadcast(context.Background(), v)
	}
	wg.Wait()

	assert.Equal(t, 20, r.Len())
}

func TestBroadcast_WithMockHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	h := NewMockHandle(ctrl)
	h.EXPECT().ID().Return("mocked").AnyTimes()
	gomock.InOrder(
		h.EXPECT().Deliver(ctx, int32(1)).Return(nil),
		h.EXPECT().Deliver(ctx, int32(2)).Return(fmt.Errorf("send: %w", ErrRemoteDisconnected)),
	)

	r := newTestRegistry()
	require.NoError(t, r.Register(h))

	assert.Equal(t, 1, r.Broadcast(ctx, 1).Delivered)
	assert.Equal(t, []string{"mocked"}, r.Broadcast(ctx, 2).Pruned)
	// pruned handle is never called again
	assert.Zero(t, r.Broadcast(ctx, 3).Delivered)
}

// ── Disable ──────────────────────────────────────────────────────────────────

func TestDisable_EmptiesAndRejects(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register(newFakeHandle("a")))

	r.Disable()

	assert.True(t, r.Disabled())
	assert.Zero(t, r.Len())

	err := r.Register(newFakeHandle("b"))
	assert.ErrorIs(t, err, ErrRegistryDisabled)
	assert.Zero(t, r.Len())
}

func TestDisable_Idempotent(t *testing.T) {
	r := newTestRegistry()
	r.Disable()
	assert.NotPanics(t, r.Disable)
	assert.ErrorIs(t, r.Register(newFakeHandle("a")), ErrRegistryDisabled)
}

func TestDisable_EmptyIsNotDisabled(t *testing.T) {
	r := newTestRegistry()
	assert.Zero(t, r.Len())
	assert.False(t, r.Disabled())
	assert.NoError(t, r.Register(newFakeHandle("a")))
}
