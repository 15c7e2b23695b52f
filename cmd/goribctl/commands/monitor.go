package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

func monitorCmd() *cobra.Command {
	var includeCurrent bool

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Stream FIB changes",
		Long:  "Connects to the goribd daemon and streams FIB changes until interrupted (Ctrl+C).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stream, err := client.WatchFIB(ctx, &ribv1.WatchFIBRequest{
				IncludeCurrent: includeCurrent,
			})
			if err != nil {
				return fmt.Errorf("watch fib: %w", err)
			}
			defer stream.Close()

			for stream.Receive() {
				out, fmtErr := formatFIBChange(stream.Msg(), outputFormat)
				if fmtErr != nil {
					return fmt.Errorf("format fib change: %w", fmtErr)
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			if err := stream.Err(); err != nil {
				// Context cancellation (Ctrl+C) is expected, not an error.
				if errors.Is(err, context.Canceled) {
					return nil
				}

				return fmt.Errorf("stream error: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeCurrent, "current", false,
		"include current FIB entries before streaming changes")

	return cmd
}
