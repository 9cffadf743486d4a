// Package cli — args.go implements the "docker-utility args" command.
//
// Args prints the extra run arguments a container was created with, by
// decoding the options label stored on it. This is the read side of what
// create wrote; the output is the exact space-joined argument string.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// NewArgsCommand creates the "args" cobra command.
func NewArgsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "args <name>",
		Short: "Show the stored creation arguments of a managed container",
		Long: `Print the extra run arguments the named container was created with.

The arguments are read from the container's options label and printed in
their original space-joined form. A container created without extra
arguments prints an empty line.`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgs(cmd, args[0])
		},
	}
}

// runArgs inspects the container and decodes its options label.
func runArgs(cmd *cobra.Command, name string) error {
	if err := requireName(name); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := rt.InspectContainer(cmd.Context(), name)
	if err != nil {
		return err
	}

	encoded, ok := info.Labels[docker.LabelOptions]
	if !ok {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("no options label found on container %q", name))
	}

	options, err := docker.DecodeOptions(encoded)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("could not decode options label of container %q", name), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), options)
	return nil
}
