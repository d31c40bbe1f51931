// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses server command-line flags from args.
//
// Flags:
//
//	-a HTTP address in format [host]:[port]
//	-grpc-address RPC address in format [host]:[port]
//	-c/-config json file path with configs
//	-tick tick interval (e.g., "1s", "250ms")
//	-delivery-buffer per-binding delivery queue length
//	-kill-delay delay before the kill-process hook exits
//	-shutdown-timeout graceful shutdown bound
//	-version application version
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var jsonConfigPath string
	var tickInterval, killDelay, shutdownTimeout time.Duration
	var deliveryBuffer int
	var version string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&tickInterval, "tick", 0, "Tick interval (e.g., 1s, 250ms)")
	fs.IntVar(&deliveryBuffer, "delivery-buffer", 0, "Per-binding delivery queue length")
	fs.DurationVar(&killDelay, "kill-delay", 0, "Delay before kill-process exits")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Version: version},
		Server: Server{
			HTTPAddress:     httpAddress.String(),
			GRPCAddress:     grpcAddress.String(),
			ShutdownTimeout: shutdownTimeout,
		},
		Service: Service{
			TickInterval:   tickInterval,
			DeliveryBuffer: deliveryBuffer,
			KillDelay:      killDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
