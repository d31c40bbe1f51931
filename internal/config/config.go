// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and client binaries. It is populated by merging environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses of the server process.
	Server Server `envPrefix:"SERVER_"`

	// Service tunes the server core: tick period, per-binding delivery
	// queue and the kill-process hook.
	Service Service `envPrefix:"SERVICE_"`

	// Client holds settings of the command-line client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is reported by /api/version and the status document.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings of the server process.
type Server struct {
	// HTTPAddress is the operational HTTP listener (version, status,
	// metrics). Empty disables it.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the RPC listener in "host:port" format.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of the transports.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Service holds server core settings.
type Service struct {
	// TickInterval is the scheduler period.
	// Env: SERVICE_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// DeliveryBuffer is the outbound queue length of one binding session.
	// A full queue marks the remote as gone.
	// Env: SERVICE_DELIVERY_BUFFER
	DeliveryBuffer int `env:"DELIVERY_BUFFER"`

	// KillDelay is how long the kill-process hook waits before exiting so
	// that the acknowledgement reaches the caller.
	// Env: SERVICE_KILL_DELAY
	KillDelay time.Duration `env:"KILL_DELAY"`
}

// Client holds settings of the command-line client.
type Client struct {
	// GRPCAddress is the server RPC address.
	// Env: CLIENT_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// HTTPAddress is the server operational HTTP address.
	// Env: CLIENT_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds unary calls issued by the client.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReconnectBase is the first backoff step after the server goes away.
	// Env: CLIENT_RECONNECT_BASE
	ReconnectBase time.Duration `env:"RECONNECT_BASE"`

	// ReconnectMax caps a single backoff step.
	// Env: CLIENT_RECONNECT_MAX
	ReconnectMax time.Duration `env:"RECONNECT_MAX"`

	// Policy is a comma-separated list of binding policy flags,
	// e.g. "auto-create,important".
	// Env: CLIENT_POLICY
	Policy string `env:"POLICY"`
}

// Defaults returns the values used for every field left empty by all sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Server: Server{
			GRPCAddress:     "localhost:9090",
			ShutdownTimeout: 5 * time.Second,
		},
		Service: Service{
			TickInterval:   time.Second,
			DeliveryBuffer: 16,
			KillDelay:      100 * time.Millisecond,
		},
		Client: Client{
			GRPCAddress:    "localhost:9090",
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 5 * time.Second,
			ReconnectBase:  200 * time.Millisecond,
			ReconnectMax:   5 * time.Second,
			Policy:         "auto-create",
		},
	}
}

// GetStructuredConfig loads the server configuration. Sources are applied in
// the following order, later sources overriding non-zero fields:
//  1. Environment variables
//  2. Command-line flags (args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards take their value from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetClientConfig loads the client configuration from the environment and
// the optional JSON file. Command-line flags are owned by the client CLI.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validateClient(); err != nil {
		return nil, err
	}

	return cfg, nil
}
