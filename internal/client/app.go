// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-remote-service/internal/adapter"
	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/connection"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/models"
)

// App is the client side of one server process. Every command of the CLI
// is a method.
type App struct {
	server  adapter.ServerAdapter
	status  adapter.StatusAdapter
	manager *connection.Manager
	caller  string
	logger  *logger.Logger
}

// NewApp wires the adapters into a client. caller names this client in the
// server log.
func NewApp(server adapter.ServerAdapter, status adapter.StatusAdapter, cfg config.Client, caller string, log *logger.Logger) *App {
	return &App{
		server:  server,
		status:  status,
		manager: connection.NewManager(server, cfg, caller, log),
		caller:  caller,
		logger:  log,
	}
}

// StartServer sends the explicit start-server command.
func (a *App) StartServer(ctx context.Context, reason string) (models.StartResponse, error) {
	resp, err := a.server.Start(ctx, models.StartRequest{Caller: a.caller, Reason: reason})
	if err != nil {
		return models.StartResponse{}, fmt.Errorf("start server: %w", err)
	}

	a.logger.Info().Int("start_id", resp.StartID).Int32("counter", resp.Counter).Msg("server started")
	return resp, nil
}

// StopServer sends the stop-server command.
func (a *App) StopServer(ctx context.Context) error {
	if err := a.server.Stop(ctx, models.StopRequest{Caller: a.caller}); err != nil {
		return fmt.Errorf("stop server: %w", err)
	}
	return nil
}

// Status fetches the status document over HTTP.
func (a *App) Status(ctx context.Context) (models.ServerStatus, error) {
	return a.status.Status(ctx)
}

// Version fetches the server build version over HTTP.
func (a *App) Version(ctx context.Context) (string, error) {
	return a.status.Version(ctx)
}

// ServerPID binds the secondary interface and asks for the server pid.
func (a *App) ServerPID(ctx context.Context, flags models.PolicyFlag) (int32, error) {
	var pid int32
	err := a.withSecondary(ctx, flags, func(s *connection.Secondary) error {
		var err error
		pid, err = s.GetServerProcessID(ctx)
		return err
	})
	return pid, err
}

// ExerciseTypes sends req over the secondary interface. The binding id of
// req is ignored.
func (a *App) ExerciseTypes(ctx context.Context, flags models.PolicyFlag, req models.ExerciseTypesRequest) error {
	return a.withSecondary(ctx, flags, func(s *connection.Secondary) error {
		return s.ExerciseTypes(ctx, req.Int32, req.Int64, req.Bool, req.Float32, req.Float64, req.String)
	})
}

// KillServer asks the server process to terminate itself.
func (a *App) KillServer(ctx context.Context, flags models.PolicyFlag) error {
	return a.withSecondary(ctx, flags, func(s *connection.Secondary) error {
		return s.KillProcess(ctx)
	})
}

// Close unbinds everything and releases the connection to the server.
func (a *App) Close() error {
	a.manager.Close()
	return a.server.Close()
}

func (a *App) withSecondary(ctx context.Context, flags models.PolicyFlag, fn func(s *connection.Secondary) error) error {
	b, err := a.manager.Connect(ctx, models.Secondary, flags, nil)
	if err != nil {
		return err
	}
	defer b.Unbind()

	if err = b.WaitState(ctx, models.Connected); err != nil {
		return fmt.Errorf("wait for %s binding: %w", models.Secondary, err)
	}

	s, err := b.Secondary()
	if err != nil {
		return err
	}
	return fn(s)
}
