// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/config"
	handlergrpc "github.com/MKhiriev/go-remote-service/internal/handler/grpc"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/metrics"
	"github.com/MKhiriev/go-remote-service/internal/service"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

type adapterFixture struct {
	adapter ServerAdapter
	host    *service.Host
	clock   *testclock.Clock
	kills   *atomic.Int32
}

func newAdapterFixture(t *testing.T) *adapterFixture {
	t.Helper()

	kills := &atomic.Int32{}
	clk := testclock.NewClock(time.Now())
	m := metrics.NewNop()
	host := service.NewHost(
		config.Service{TickInterval: time.Second, DeliveryBuffer: 16},
		"test", m, logger.Nop(),
		service.WithClock(clk),
		service.WithPID(777),
		service.WithProcessKiller(func() { kills.Add(1) }),
	)
	h := handlergrpc.NewHandler(service.NewServices(host), 16, m, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()

	a, err := NewGRPCServerAdapter(
		config.Client{GRPCAddress: "passthrough:///bufnet", RequestTimeout: time.Second},
		logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = a.Close()
		srv.Stop()
		host.Shutdown()
	})

	return &adapterFixture{adapter: a, host: host, clock: clk, kills: kills}
}

func (f *adapterFixture) bind(t *testing.T, ctx context.Context, kind models.InterfaceKind, flags models.PolicyFlag) (models.BindEvent, BindStream) {
	t.Helper()

	stream, err := f.adapter.Bind(ctx, models.BindRequest{Interface: string(kind), Flags: flags})
	require.NoError(t, err)

	ev, err := stream.Recv()
	require.NoError(t, err)
	require.Equal(t, models.EventConnected, ev.Type)
	return ev, stream
}

func TestGRPCAdapter_BindErrors(t *testing.T) {
	f := newAdapterFixture(t)

	tests := []struct {
		name    string
		req     models.BindRequest
		wantErr error
	}{
		{name: "unknown interface", req: models.BindRequest{Interface: "tertiary", Flags: models.AutoCreate}, wantErr: models.ErrUnknownInterface},
		{name: "not created", req: models.BindRequest{Interface: string(models.Primary)}, wantErr: ErrServiceNotCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := f.adapter.Bind(context.Background(), tt.req)
			require.NoError(t, err)

			_, err = stream.Recv()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGRPCAdapter_PrimaryDeliveries(t *testing.T) {
	f := newAdapterFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connected, stream := f.bind(t, ctx, models.Primary, models.AutoCreate)
	assert.EqualValues(t, 777, connected.PID)

	require.NoError(t, f.adapter.RegisterCallback(ctx, connected.BindingID, "cb"))
	require.NoError(t, f.clock.WaitAdvance(time.Second, time.Second, 1))

	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, models.EventValueChanged, ev.Type)
	assert.EqualValues(t, 1, ev.Value)

	require.NoError(t, f.adapter.UnregisterCallback(ctx, connected.BindingID, "cb"))
	assert.ErrorIs(t, f.adapter.RegisterCallback(ctx, "missing", "cb"), ErrBindingNotFound)
	assert.ErrorIs(t, f.adapter.RegisterCallback(ctx, connected.BindingID, ""), ErrInvalidArgument)

	_, err = f.adapter.GetServerProcessID(ctx, connected.BindingID)
	assert.ErrorIs(t, err, ErrWrongInterface)
}

func TestGRPCAdapter_Secondary(t *testing.T) {
	f := newAdapterFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connected, _ := f.bind(t, ctx, models.Secondary, models.AutoCreate)

	pid, err := f.adapter.GetServerProcessID(ctx, connected.BindingID)
	require.NoError(t, err)
	assert.EqualValues(t, 777, pid)

	require.NoError(t, f.adapter.ExerciseTypes(ctx, models.ExerciseTypesRequest{
		BindingID: connected.BindingID, Int32: -1, Int64: 1 << 40, Bool: true, Float32: 0.5, Float64: 0.25, String: "ok",
	}))

	require.NoError(t, f.adapter.KillProcess(ctx, connected.BindingID))
	assert.EqualValues(t, 1, f.kills.Load())
}

func TestGRPCAdapter_StartStop(t *testing.T) {
	f := newAdapterFixture(t)
	ctx := context.Background()

	resp, err := f.adapter.Start(ctx, models.StartRequest{Caller: "test"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.StartID)

	require.NoError(t, f.adapter.Stop(ctx, models.StopRequest{Caller: "test"}))
	assert.False(t, f.host.Status(ctx).Alive)
}

func TestGRPCAdapter_StreamEndsOnShutdown(t *testing.T) {
	f := newAdapterFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, stream := f.bind(t, ctx, models.Primary, models.AutoCreate)
	f.host.Shutdown()

	_, err := stream.Recv()
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
