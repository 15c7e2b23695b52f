package commands

import (
	"fmt"

	"github.com/reeflective/console"
	"github.com/spf13/cobra"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive goribctl shell",
		Long:  "Launches a REPL with completion and history that accepts goribctl subcommands. Press Ctrl+D to quit.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app := console.New("goribctl")
			app.NewlineBefore = true

			menu := app.ActiveMenu()
			menu.Prompt().Primary = func() string {
				return "goribctl(" + serverAddr + ")> "
			}

			// Each command line runs against a fresh command tree that
			// inherits --addr and --format from the shell invocation.
			menu.SetCommands(func() *cobra.Command {
				root := newRootCmd(false)
				root.CompletionOptions.DisableDefaultCmd = true
				return root
			})

			fmt.Println("goribd interactive shell. Type 'help' for available commands, Ctrl+D to quit.")

			if err := app.Start(); err != nil {
				return fmt.Errorf("run shell: %w", err)
			}

			return nil
		},
	}
}
