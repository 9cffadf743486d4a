// Package cli — update.go implements the "docker-utility update" command.
//
// Update replaces a managed container with a freshly pulled copy of its
// image while preserving its original creation arguments. The sequence is
// an ordered pipeline of fallible steps:
//
//	inspect → pull → stop → remove → create
//
// The first failing step aborts the remainder immediately. There is no
// rollback: an update that fails after stop+remove leaves no container
// running, and recovery is a manual re-create (the export JSON still
// holds everything needed).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// NewUpdateCommand creates the "update" cobra command.
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <name>",
		Short: "Recreate a container with a freshly pulled image",
		Long: `Pull the container's image and recreate the container from it, reusing
the name, labels, and the creation arguments stored in the options label.

The old container is stopped and removed before the new one is created.
If any step fails, the remaining steps are skipped.`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args[0])
		},
	}
}

// runUpdate executes the inspect/pull/stop/remove/create pipeline.
func runUpdate(cmd *cobra.Command, name string) error {
	if err := requireName(name); err != nil {
		return err
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	// Read the image and stored options before touching the container.
	// Either one missing makes the container unrecreatable, so both are
	// checked up front while the old container is still intact.
	info, err := rt.InspectContainer(ctx, name)
	if err != nil {
		return err
	}
	if info.Image == "" {
		return model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("no image recorded for container %q", name))
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

	if err := rt.PullImage(ctx, info.Image); err != nil {
		return err
	}
	if err := rt.StopContainer(ctx, name); err != nil {
		return err
	}
	if err := rt.RemoveContainer(ctx, name); err != nil {
		return err
	}

	// The new container stores the decoded options verbatim in its own
	// label. For the run flags the flattened string has to be re-split
	// on whitespace, so arguments that contained literal spaces at
	// create time do not survive an update intact.
	if err := rt.CreateContainer(ctx, name, info.Image,
		docker.SplitOptions(options), docker.BuildLabels(options)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated container %q to the current %q\n", name, info.Image)
	return nil
}
