// Package cli — list.go implements the "docker-utility list" command.
//
// List shows every container carrying the marker label, including stopped
// ones, as an aligned text table.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List managed containers",
		Long: `List all containers managed by docker-utility, including stopped ones.

Only containers carrying the marker label appear; everything else on the
host is ignored.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}
}

// runList queries the engine and renders the result table.
func runList(cmd *cobra.Command) error {
	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	containers, err := rt.ListManaged(cmd.Context())
	if err != nil {
		return err
	}

	printContainerTable(cmd.OutOrStdout(), containers)
	return nil
}

// printContainerTable renders containers as fixed-width columns:
//
//	NAME            IMAGE                STATUS
//	web             nginx:1.27           running
//	cache           redis:7              exited
func printContainerTable(out io.Writer, containers []model.ContainerInfo) {
	if len(containers) == 0 {
		fmt.Fprintln(out, "No managed containers found.")
		return
	}

	fmt.Fprintf(out, "%-24s %-32s %s\n", "NAME", "IMAGE", "STATUS")
	for _, c := range containers {
		fmt.Fprintf(out, "%-24s %-32s %s\n", c.Name, c.Image, c.State)
	}
}
