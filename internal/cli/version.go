// Package cli — version.go implements the "docker-utility version" command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the "version" cobra command. It mirrors the
// root command's --version flag as a subcommand, which is how scripts
// written against the original tool call it.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docker-utility version",

		Args: cobra.NoArgs,

		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docker-utility %s (commit: %s, built: %s)\n",
				Version, Commit, Date)
		},
	}
}
