// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-remote-service/models"
	"github.com/spf13/cobra"
)

func versionCmd(c *cli, info models.AppBuildInfo) *cobra.Command {
	var withServer bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

			if !withServer {
				return nil
			}

			app, err := c.open()
			if err != nil {
				return err
			}
			version, err := app.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Server version: %s\n", version)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&withServer, "server", "s", false, "also ask the server for its version")

	return cmd
}
