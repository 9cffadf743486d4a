// Package cli — remove.go implements the "docker-utility remove" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the "remove" cobra command.
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Stop and remove a container",
		Long: `Stop the named container and remove it.

Removing a container also discards its labels, so the stored creation
arguments are gone with it — run "export" first if they should survive.`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0])
		},
	}
}

// runRemove stops and then removes the container. Only the remove call
// decides the outcome: the stop may fail because the container is
// already stopped, which is fine.
func runRemove(cmd *cobra.Command, name string) error {
	if err := requireName(name); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	if err := rt.StopContainer(ctx, name); err != nil {
		DebugLog("ignoring stop failure before remove: %v", err)
	}

	if err := rt.RemoveContainer(ctx, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed container %q\n", name)
	return nil
}
