// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-remote-service/internal/adapter"
	"github.com/MKhiriev/go-remote-service/internal/client"
	"github.com/MKhiriev/go-remote-service/internal/config"
	"github.com/MKhiriev/go-remote-service/internal/logger"
	"github.com/MKhiriev/go-remote-service/models"
)

// cli holds the state shared by all commands. The client app is built on
// first use so that commands like version work without a server.
type cli struct {
	grpcAddress string
	httpAddress string
	policy      string

	cfg *config.StructuredConfig
	log *logger.Logger
	app *client.App
}

func (c *cli) open() (*client.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	c.log = logger.NewClientLogger("remote-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	if c.grpcAddress != "" {
		cfg.Client.GRPCAddress = c.grpcAddress
	}
	if c.httpAddress != "" {
		cfg.Client.HTTPAddress = c.httpAddress
	}
	if c.policy != "" {
		cfg.Client.Policy = c.policy
	}
	c.cfg = cfg

	server, err := adapter.NewGRPCServerAdapter(cfg.Client, c.log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	status, err := adapter.NewHTTPStatusAdapter(cfg.Client, c.log)
	if err != nil {
		_ = server.Close()
		return nil, fmt.Errorf("create status adapter: %w", err)
	}

	caller := fmt.Sprintf("remote-client/%d", os.Getpid())
	c.app = client.NewApp(server, status, cfg.Client, caller, c.log)
	return c.app, nil
}

func (c *cli) flags() (models.PolicyFlag, error) {
	return models.ParsePolicyFlags(c.cfg.Client.Policy)
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	if err := c.app.Close(); err != nil {
		c.log.Debug().Err(err).Msg("closing client")
	}
	c.app = nil
}
