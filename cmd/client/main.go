// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-remote-service/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "remote-client",
		Short: "Command-line client of the remote counter service",
		Long: `remote-client talks to a remote-server process over gRPC.

It can start and stop the service, bind its primary interface to watch the
broadcast counter, and call the secondary interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			c.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.grpcAddress, "grpc-address", "", "server gRPC address (overrides CLIENT_GRPC_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&c.httpAddress, "http-address", "", "server HTTP address (overrides CLIENT_HTTP_ADDRESS)")
	rootCmd.PersistentFlags().StringVarP(&c.policy, "policy", "p", "", "comma-separated binding policy flags (overrides CLIENT_POLICY)")

	rootCmd.AddCommand(
		startCmd(c),
		stopCmd(c),
		statusCmd(c),
		pidCmd(c),
		exerciseCmd(c),
		killCmd(c),
		watchCmd(c),
		versionCmd(c, newBuildInfo()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		c.close()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
