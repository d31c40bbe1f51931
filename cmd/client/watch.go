// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/MKhiriev/go-remote-service/internal/client"
	"github.com/spf13/cobra"
)

func watchCmd(c *cli) *cobra.Command {
	var opts client.WatchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Bind the primary interface and print broadcast values",
		Long: `watch binds the primary interface with the configured policy flags,
registers a callback and prints every value the server broadcasts.

The callback is registered again whenever the binding reconnects. With the
waive-priority flag the watch ends as soon as the server goes away.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}
			if opts.Flags, err = c.flags(); err != nil {
				return err
			}
			opts.Out = cmd.OutOrStdout()

			return app.Watch(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 0, "stop after n values (0 = until interrupted)")
	cmd.Flags().IntVar(&opts.UnregisterAfter, "unregister-after", 0, "unregister the callback after n values and keep the binding")
	cmd.Flags().StringVar(&opts.CallbackID, "callback-id", "", "callback id (random when empty)")

	return cmd
}
