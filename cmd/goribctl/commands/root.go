package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

var (
	// client is the ConnectRPC RIB service client, initialized in PersistentPreRunE.
	client ribv1connect.RibServiceClient

	// outputFormat controls the output format for all commands (table, json or yaml).
	outputFormat = formatTable

	// serverAddr is the daemon address (host:port) for the ConnectRPC connection.
	serverAddr = "localhost:50052"
)

// newRootCmd builds the top-level cobra command. Flag defaults are the
// current values so that commands run from the shell inherit the flags
// the shell was started with.
func newRootCmd(withShell bool) *cobra.Command {
	root := &cobra.Command{
		Use:   "goribctl",
		Short: "CLI client for the goribd daemon",
		Long:  "goribctl communicates with the goribd daemon via ConnectRPC to inspect and configure the RIB.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			client = ribv1connect.NewRibServiceClient(
				http.DefaultClient,
				"http://"+serverAddr,
			)

			return nil
		},
		// Silence cobra's built-in usage/error printing so we control it.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&serverAddr, "addr", serverAddr,
		"goribd daemon address (host:port)")
	root.PersistentFlags().StringVar(&outputFormat, "format", outputFormat,
		"output format: table, json, yaml")

	root.AddCommand(ribCmd())
	root.AddCommand(fibCmd())
	root.AddCommand(kernelCmd())
	root.AddCommand(routeCmd())
	root.AddCommand(interfaceCmd())
	root.AddCommand(statusCmd())
	root.AddCommand(eventsCmd())
	root.AddCommand(monitorCmd())
	root.AddCommand(versionCmd())

	if withShell {
		root.AddCommand(shellCmd())
	}

	return root
}

// Execute runs the root command and exits with code 1 on error.
func Execute() {
	if err := newRootCmd(true).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
