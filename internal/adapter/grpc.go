// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/rpcapi"
	"github.com/MKhiriev/go-remote-service/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const traceIDKey = "x-trace-id"

type grpcServerAdapter struct {
	conn      *grpc.ClientConn
	host      rpcapi.HostClient
	primary   rpcapi.PrimaryClient
	secondary rpcapi.SecondaryClient

	timeout time.Duration
	logger  *logger.Logger
}

// NewGRPCServerAdapter dials cfg.GRPCAddress lazily; the first call opens the
// connection. Extra dial options are appended after the defaults.
func NewGRPCServerAdapter(cfg config.Client, log *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 5 * time.Second
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(rpcapi.CallOption()),
		grpc.WithChainUnaryInterceptor(traceIDUnary),
		grpc.WithChainStreamInterceptor(traceIDStream),
	}, opts...)

	conn, err := grpc.NewClient(cfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client %s: %w", cfg.GRPCAddress, err)
	}

	log.Debug().Str("address", cfg.GRPCAddress).Msg("gRPC adapter created")

	return &grpcServerAdapter{
		conn:      conn,
		host:      rpcapi.NewHostClient(conn),
		primary:   rpcapi.NewPrimaryClient(conn),
		secondary: rpcapi.NewSecondaryClient(conn),
		timeout:   cfg.RequestTimeout,
		logger:    log,
	}, nil
}

func (g *grpcServerAdapter) Start(ctx context.Context, req models.StartRequest) (models.StartResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.host.Start(ctx, &req)
	if err != nil {
		return models.StartResponse{}, fmt.Errorf("start: %w", mapGRPCError(err))
	}
	return *resp, nil
}

func (g *grpcServerAdapter) Stop(ctx context.Context, req models.StopRequest) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.host.Stop(ctx, &req); err != nil {
		return fmt.Errorf("stop: %w", mapGRPCError(err))
	}
	return nil
}

func (g *grpcServerAdapter) Bind(ctx context.Context, req models.BindRequest) (BindStream, error) {
	stream, err := g.host.Bind(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("bind: %w", mapGRPCError(err))
	}
	return &grpcBindStream{stream: stream}, nil
}

func (g *grpcServerAdapter) RegisterCallback(ctx context.Context, bindingID, callbackID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.primary.RegisterCallback(ctx, &models.CallbackRequest{BindingID: bindingID, CallbackID: callbackID}); err != nil {
		return fmt.Errorf("register callback: %w", mapGRPCError(err))
	}
	return nil
}

func (g *grpcServerAdapter) UnregisterCallback(ctx context.Context, bindingID, callbackID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.primary.UnregisterCallback(ctx, &models.CallbackRequest{BindingID: bindingID, CallbackID: callbackID}); err != nil {
		return fmt.Errorf("unregister callback: %w", mapGRPCError(err))
	}
	return nil
}

func (g *grpcServerAdapter) GetServerProcessID(ctx context.Context, bindingID string) (int32, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.secondary.GetServerProcessID(ctx, &models.SecondaryRequest{BindingID: bindingID})
	if err != nil {
		return 0, fmt.Errorf("get server pid: %w", mapGRPCError(err))
	}
	return resp.PID, nil
}

func (g *grpcServerAdapter) ExerciseTypes(ctx context.Context, req models.ExerciseTypesRequest) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.secondary.ExerciseTypes(ctx, &req); err != nil {
		return fmt.Errorf("exercise types: %w", mapGRPCError(err))
	}
	return nil
}

func (g *grpcServerAdapter) KillProcess(ctx context.Context, bindingID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.secondary.KillProcess(ctx, &models.SecondaryRequest{BindingID: bindingID}); err != nil {
		return fmt.Errorf("kill process: %w", mapGRPCError(err))
	}
	return nil
}

func (g *grpcServerAdapter) Close() error {
	return g.conn.Close()
}

type grpcBindStream struct {
	stream rpcapi.HostBindClient
}

func (s *grpcBindStream) Recv() (models.BindEvent, error) {
	ev, err := s.stream.Recv()
	if err != nil {
		return models.BindEvent{}, mapGRPCError(err)
	}
	return *ev, nil
}

func withTraceID(ctx context.Context) context.Context {
	if md, ok := metadata.FromOutgoingContext(ctx); ok && len(md.Get(traceIDKey)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, traceIDKey, uuid.NewString())
}

func traceIDUnary(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	return invoker(withTraceID(ctx), method, req, reply, cc, opts...)
}

func traceIDStream(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return streamer(withTraceID(ctx), desc, cc, method, opts...)
}
