// Package cli — start.go implements the "docker-utility start" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStartCommand creates the "start" cobra command.
func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <name>",
		Short: "Start a stopped container",

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, args[0])
		},
	}
}

// runStart issues the single start call and reports the outcome.
func runStart(cmd *cobra.Command, name string) error {
	if err := requireName(name); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := rt.StartContainer(cmd.Context(), name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Started container %q\n", name)
	return nil
}
