// Package cli — restart.go implements the "docker-utility restart" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRestartCommand creates the "restart" cobra command.
func NewRestartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restart <name>",
		Short: "Restart a container",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestart(cmd, args[0])
		},
	}
}

// runRestart issues the single restart call and reports the outcome.
func runRestart(cmd *cobra.Command, name string) error {
	if err := requireName(name); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := rt.RestartContainer(cmd.Context(), name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Restarted container %q\n", name)
	return nil
}
