package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

// Sentinel errors for CLI validation.
var (
	errNoAttrs       = errors.New("at least one of --distance or --metric is required")
	errRouteNotFound = errors.New("route not found")
)

func routeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Configure routes",
	}

	cmd.AddCommand(routeAddCmd())
	cmd.AddCommand(routeDelCmd())
	cmd.AddCommand(routeSetCmd())

	return cmd
}

// --- route add ---

func routeAddCmd() *cobra.Command {
	var (
		protocol string
		distance uint32
		metric   uint32
	)

	cmd := &cobra.Command{
		Use:   "add <prefix> <nexthop>",
		Short: "Add a next-hop to a route",
		Long:  "Adds a gateway address or interface next-hop to the route for prefix. A zero distance selects the protocol default.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := client.AddRoute(cmd.Context(), &ribv1.AddRouteRequest{
				Prefix:   args[0],
				Protocol: protocol,
				Distance: distance,
				Metric:   metric,
				NextHop:  args[1],
			})
			if err != nil {
				return fmt.Errorf("add route: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Route %s via %s added.\n", args[0], args[1])

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&protocol, "protocol", "static", "route protocol: static, bgp, zebra")
	flags.Uint32Var(&distance, "distance", 0, "administrative distance (0 selects the protocol default)")
	flags.Uint32Var(&metric, "metric", 0, "route metric")

	return cmd
}

// --- route del ---

func routeDelCmd() *cobra.Command {
	var protocol string

	cmd := &cobra.Command{
		Use:   "del <prefix> [nexthop]",
		Short: "Remove a next-hop, or the whole route",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &ribv1.RemoveRouteRequest{
				Prefix:   args[0],
				Protocol: protocol,
			}
			if len(args) == 2 {
				req.NextHop = args[1]
			}

			if _, err := client.RemoveRoute(cmd.Context(), req); err != nil {
				return fmt.Errorf("remove route: %w", err)
			}

			if req.GetNextHop() != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Route %s via %s removed.\n", req.GetPrefix(), req.GetNextHop())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Route %s removed.\n", req.GetPrefix())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&protocol, "protocol", "static", "route protocol: static, bgp, zebra")

	return cmd
}

// --- route set ---

func routeSetCmd() *cobra.Command {
	var (
		protocol string
		distance uint32
		metric   uint32
	)

	cmd := &cobra.Command{
		Use:   "set <prefix>",
		Short: "Change distance and metric of an existing route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			setDistance, setMetric := flags.Changed("distance"), flags.Changed("metric")
			if !setDistance && !setMetric {
				return errNoAttrs
			}

			req := &ribv1.SetRouteAttrsRequest{
				Prefix:   args[0],
				Protocol: protocol,
				Distance: distance,
				Metric:   metric,
			}

			// The attribute left out keeps its current value.
			if !setDistance || !setMetric {
				cur, err := currentAttrs(cmd.Context(), args[0], protocol)
				if err != nil {
					return err
				}
				if !setDistance {
					req.Distance = cur.GetDistance()
				}
				if !setMetric {
					req.Metric = cur.GetMetric()
				}
			}

			if _, err := client.SetRouteAttrs(cmd.Context(), req); err != nil {
				return fmt.Errorf("set route attributes: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Route %s updated.\n", args[0])

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&protocol, "protocol", "static", "route protocol: static, bgp, zebra")
	flags.Uint32Var(&distance, "distance", 0, "administrative distance (0 selects the protocol default)")
	flags.Uint32Var(&metric, "metric", 0, "route metric")

	return cmd
}

// currentAttrs looks up the configured route for (prefix, protocol).
func currentAttrs(ctx context.Context, prefix, protocol string) (*ribv1.RIBEntry, error) {
	resp, err := client.ShowRIB(ctx, &ribv1.ShowRIBRequest{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("show rib: %w", err)
	}

	want := strings.ToLower(protocol)
	if want == "kernel" {
		want = "zebra"
	}
	for _, e := range resp.GetEntries() {
		if e.GetProtocol() == want {
			return e, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %s", errRouteNotFound, protocol, prefix)
}
