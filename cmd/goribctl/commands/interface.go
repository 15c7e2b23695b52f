package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
)

// errBadLinkState is returned when a link state is neither up nor down.
var errBadLinkState = errors.New("link state must be up or down")

func interfaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interface",
		Aliases: []string{"iface"},
		Short:   "Configure interfaces",
	}

	cmd.AddCommand(interfaceListCmd())
	cmd.AddCommand(interfaceSetCmd())
	cmd.AddCommand(interfaceDelCmd())
	cmd.AddCommand(interfaceLinkCmd())
	cmd.AddCommand(interfaceAddrCmd())

	return cmd
}

// --- interface list ---

func interfaceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List interfaces with their operational state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := client.ListInterfaces(cmd.Context(), &ribv1.ListInterfacesRequest{})
			if err != nil {
				return fmt.Errorf("list interfaces: %w", err)
			}

			out, err := formatInterfaces(resp.GetInterfaces(), outputFormat)
			if err != nil {
				return fmt.Errorf("format interfaces: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}
}

// --- interface set ---

func interfaceSetCmd() *cobra.Command {
	var (
		addresses []string
		shutdown  bool
		noRouting bool
	)

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or replace an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := client.SetInterface(cmd.Context(), &ribv1.SetInterfaceRequest{
				Interface: &ribv1.Interface{
					Name:      args[0],
					AdminUp:   !shutdown,
					Routing:   !noRouting,
					Addresses: addresses,
				},
			})
			if err != nil {
				return fmt.Errorf("set interface: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Interface %s configured.\n", args[0])

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&addresses, "address", nil, "address in host/prefix-length form (repeatable)")
	flags.BoolVar(&shutdown, "shutdown", false, "set the interface administratively down")
	flags.BoolVar(&noRouting, "no-routing", false, "mark the interface as a layer-2 port")

	return cmd
}

// --- interface del ---

func interfaceDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <name>",
		Short: "Remove an interface and its addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := client.RemoveInterface(cmd.Context(), &ribv1.RemoveInterfaceRequest{Name: args[0]})
			if err != nil {
				return fmt.Errorf("remove interface: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Interface %s removed.\n", args[0])

			return nil
		},
	}
}

// --- interface link ---

func interfaceLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link <name> <up|down>",
		Short: "Report the operational state of an interface",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			up, err := parseLinkState(args[1])
			if err != nil {
				return err
			}

			_, err = client.SetLinkState(cmd.Context(), &ribv1.SetLinkStateRequest{Name: args[0], Up: up})
			if err != nil {
				return fmt.Errorf("set link state: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Interface %s link %s.\n", args[0], args[1])

			return nil
		},
	}
}

// parseLinkState converts "up"/"down" to a link state.
func parseLinkState(s string) (bool, error) {
	switch s {
	case "up":
		return true, nil
	case "down":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errBadLinkState, s)
	}
}

// --- interface addr ---

func interfaceAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Add or remove interface addresses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <address>",
		Short: "Assign an address to an interface",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := client.AddAddress(cmd.Context(), &ribv1.AddAddressRequest{Interface: args[0], Address: args[1]})
			if err != nil {
				return fmt.Errorf("add address: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Address %s added to %s.\n", args[1], args[0])

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "del <name> <address>",
		Short: "Remove an address from an interface",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := client.RemoveAddress(cmd.Context(), &ribv1.RemoveAddressRequest{Interface: args[0], Address: args[1]})
			if err != nil {
				return fmt.Errorf("remove address: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Address %s removed from %s.\n", args[1], args[0])

			return nil
		},
	})

	return cmd
}
