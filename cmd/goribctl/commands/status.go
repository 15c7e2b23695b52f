package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the engine status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := client.Status(cmd.Context(), &ribv1.StatusRequest{})
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			out, err := formatStatus(resp, outputFormat)
			if err != nil {
				return fmt.Errorf("format status: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Show the recent event history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := client.ListEvents(cmd.Context(), &ribv1.ListEventsRequest{})
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}

			out, err := formatEvents(resp.GetEvents(), outputFormat)
			if err != nil {
				return fmt.Errorf("format events: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
}
