// Package cli — export.go implements the "docker-utility export" command.
//
// Export emits every managed container (including stopped ones) as a JSON
// array of {name, image, args} objects on stdout. The array is the input
// format of "import", so the pair moves a curated container set between
// hosts.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// NewExportCommand creates the "export" cobra command.
func NewExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export all managed containers as JSON",
		Long: `Write a JSON array describing every managed container to stdout.

Each element has the shape {"name": ..., "image": ..., "args": ...} where
args is the decoded creation argument string (empty if the container was
created without extra arguments). Feed the array to "import" on another
host to recreate the containers.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd)
		},
	}
}

// runExport lists the managed containers, inspects each one for its
// image and labels, and marshals the result.
func runExport(cmd *cobra.Command) error {
	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()

	containers, err := rt.ListManaged(ctx)
	if err != nil {
		return err
	}

	// Zero length, not nil, so an empty host exports [] instead of null.
	items := make([]model.ManagedContainer, 0, len(containers))
	for _, c := range containers {
		info, err := rt.InspectContainer(ctx, c.Name)
		if err != nil {
			return err
		}

		// A missing, empty, or undecodable options label exports as an
		// empty argument string; the container itself is still included.
		options := ""
		if encoded, ok := info.Labels[docker.LabelOptions]; ok && encoded != "" {
			if decoded, decodeErr := docker.DecodeOptions(encoded); decodeErr == nil {
				options = decoded
			}
		}

		items = append(items, model.ManagedContainer{
			Name:  info.Name,
			Image: info.Image,
			Args:  options,
		})
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode export JSON", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
