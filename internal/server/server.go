// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/handler"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	onShutdown []func()
	logger     *logger.Logger
}

// NewServer builds a server for every handler present in handlers.
// onShutdown hooks run once shutdown begins, before the transports stop;
// the server process uses one to destroy the service so that open binding
// streams end.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, onShutdown ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.onShutdown = onShutdown
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	group := workers.New(workers.Func(s.awaitShutdown))
	if s.httpServer != nil {
		group.Add(s.httpServer)
	}
	if s.gRPCServer != nil {
		group.Add(s.gRPCServer)
	}

	if err := group.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) awaitShutdown(ctx context.Context) error {
	<-ctx.Done()
	for _, hook := range s.onShutdown {
		hook()
	}
	return nil
}
