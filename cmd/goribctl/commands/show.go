package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

// prefixArg returns the optional prefix filter argument.
func prefixArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// --- rib ---

func ribCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rib",
		Short: "Inspect the routing information base",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [prefix]",
		Short: "Show every configured next-hop of every route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.ShowRIB(cmd.Context(), &ribv1.ShowRIBRequest{Prefix: prefixArg(args)})
			if err != nil {
				return fmt.Errorf("show rib: %w", err)
			}

			out, err := formatRIB(resp, outputFormat)
			if err != nil {
				return fmt.Errorf("format rib: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	})

	return cmd
}

// --- fib ---

func fibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Inspect the forwarding view",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [prefix]",
		Short: "Show the active next-hops of every selected route",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.ShowFIB(cmd.Context(), &ribv1.ShowFIBRequest{Prefix: prefixArg(args)})
			if err != nil {
				return fmt.Errorf("show fib: %w", err)
			}

			out, err := formatFIB(resp, outputFormat)
			if err != nil {
				return fmt.Errorf("format fib: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	})

	return cmd
}

// --- kernel ---

func kernelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Inspect the kernel forwarding table",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show [prefix]",
		Short: "Show kernel routes, owned and foreign",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.ShowKernelRoutes(cmd.Context(), &ribv1.ShowKernelRoutesRequest{Prefix: prefixArg(args)})
			if err != nil {
				return fmt.Errorf("show kernel routes: %w", err)
			}

			out, err := formatKernelRoutes(resp.GetRoutes(), outputFormat)
			if err != nil {
				return fmt.Errorf("format kernel routes: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	})

	return cmd
}
