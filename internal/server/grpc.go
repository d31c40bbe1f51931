// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-remote-service/internal/config"
	myGRPC "github.com/MKhiriev/go-remote-service/internal/handler/grpc"
	"github.com/MKhiriev/go-remote-service/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	address         string
	shutdownTimeout time.Duration

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	return &grpcServer{
		address:         cfg.GRPCAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
		server:          s,
		logger:          logger,
	}
}

// Run implements workers.Worker.
func (g *grpcServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen %s: %w", g.address, err)
	}

	return g.serve(ctx, lis)
}

func (g *grpcServer) serve(ctx context.Context, lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("Launching GRPC server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- g.server.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		g.shutdown()
		return nil
	case err := <-errCh:
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
}

// shutdown waits for in-flight calls, then cuts the remaining streams.
func (g *grpcServer) shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Dur("timeout", g.shutdownTimeout).Msg("GRPC graceful stop timed out")
		g.server.Stop()
	}
}
