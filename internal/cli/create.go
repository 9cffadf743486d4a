// Package cli — create.go implements the "docker-utility create" command.
//
// Create is the operation that defines what "managed" means: the new
// container gets the marker label, and the extra run arguments are
// space-joined, base64-encoded, and stored in the options label. Every
// later operation (args, update, export) reads that stored string back.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
)

// NewCreateCommand creates the "create" cobra command.
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> <image> [extra-args...]",
		Short: "Create and start a managed container",
		Long: `Create and start a detached container with an always-restart policy.

Everything after <name> and <image> is passed to the engine's run command
verbatim, and additionally recorded (space-joined, base64-encoded) in the
container's options label so the container can later be recreated with an
updated image.

Examples:
  docker-utility create web nginx:1.27
  docker-utility create web nginx:1.27 -p 8080:80 -e FOO=bar
  docker-utility --debug create cache redis:7 -v cache-data:/data`,

		Args: cobra.MinimumNArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], args[1], args[2:])
		},
	}

	// The extra arguments are engine run flags (-p, -e, -v, ...). Flag
	// parsing must stop at the first positional so they reach us as
	// arguments instead of being rejected as unknown flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runCreate validates the inputs, builds the label pair, and issues the
// single create-and-start engine call.
func runCreate(cmd *cobra.Command, name, image string, extraArgs []string) error {
	if err := requireName(name); err != nil {
		return err
	}
	if err := requireImage(image); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	// The options label stores the arguments space-joined. This is the
	// string args/export decode and update/import re-split later.
	options := strings.Join(extraArgs, " ")
	labels := docker.BuildLabels(options)

	if err := rt.CreateContainer(cmd.Context(), name, image, extraArgs, labels); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created container %q from image %q\n", name, image)
	return nil
}
