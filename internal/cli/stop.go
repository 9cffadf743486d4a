// Package cli — stop.go implements the "docker-utility stop" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStopCommand creates the "stop" cobra command.
func NewStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <name>",
		Short: "Stop a running container",
		Long: `Gracefully stop the named container.

The container is preserved and can be started again later; only "remove"
deletes it (and with it, the stored creation arguments).`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop(cmd, args[0])
		},
	}
}

// runStop issues the single stop call and reports the outcome.
func runStop(cmd *cobra.Command, name string) error {
	if err := requireName(name); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := rt.StopContainer(cmd.Context(), name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stopped container %q\n", name)
	return nil
}
