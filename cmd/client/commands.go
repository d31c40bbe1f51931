// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-remote-service/models"
	"github.com/spf13/cobra"
)

func startCmd(c *cli) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Create the service and mark it started",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			resp, err := app.StartServer(cmd.Context(), reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "started: start id %d, counter %d\n", resp.StartID, resp.Counter)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "free-form reason logged by the server")

	return cmd
}

func stopCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Clear the started mark; the service dies once nothing is bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			if err = app.StopServer(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "stopped")
			return nil
		},
	}
}

func statusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the server status document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			status, err := app.Status(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		},
	}
}

func pidCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pid",
		Short: "Bind the secondary interface and print the server process id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}
			flags, err := c.flags()
			if err != nil {
				return err
			}

			pid, err := app.ServerPID(cmd.Context(), flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pid)
			return nil
		},
	}
}

func exerciseCmd(c *cli) *cobra.Command {
	var req models.ExerciseTypesRequest

	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Send one value of every primitive kind over the secondary interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}
			flags, err := c.flags()
			if err != nil {
				return err
			}

			if err = app.ExerciseTypes(cmd.Context(), flags, req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().Int32Var(&req.Int32, "i32", 1, "int32 value")
	cmd.Flags().Int64Var(&req.Int64, "i64", 2, "int64 value")
	cmd.Flags().BoolVar(&req.Bool, "bool", true, "bool value")
	cmd.Flags().Float32Var(&req.Float32, "f32", 3.1, "float32 value")
	cmd.Flags().Float64Var(&req.Float64, "f64", 4.2, "float64 value")
	cmd.Flags().StringVar(&req.String, "string", "five", "string value")

	return cmd
}

func killCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "kill",
		Short: "Ask the server process to terminate itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}
			flags, err := c.flags()
			if err != nil {
				return err
			}

			if err = app.KillServer(cmd.Context(), flags); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "kill requested")
			return nil
		},
	}
}
