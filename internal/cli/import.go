// Package cli — import.go implements the "docker-utility import" command.
//
// Import reads a JSON array of {name, image, args} objects from stdin —
// the format "export" writes — and issues one create call per entry.
// Entries are processed strictly in order, one at a time. A bad entry is
// logged and skipped; the batch as a whole only fails when the input
// itself is unreadable (not a JSON array, or a syntax error the stream
// decoder cannot resync past).
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// NewImportCommand creates the "import" cobra command.
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Recreate managed containers from JSON on stdin",
		Long: `Read a JSON array of {"name", "image", "args"} objects from stdin and
create a managed container for each entry.

Entries missing a name or image are skipped with a logged error, as are
entries whose create call fails; the remaining entries still run, and the
process exits 0. Comments and trailing commas in the input are tolerated,
so hand-edited export files import cleanly.

Example:
  docker-utility export > containers.json
  docker-utility import < containers.json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd)
		},
	}
}

// runImport decodes the array one element at a time and creates each
// container, tallying successes for the final summary.
func runImport(cmd *cobra.Command) error {
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to read import input", err)
	}

	// jsonc.ToJSON strips comments and trailing commas while preserving
	// all other bytes, so plain JSON passes through untouched.
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))

	tok, err := dec.Token()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "import input is not valid JSON", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return model.NewCLIError(model.ExitGeneralError, "import input must be a JSON array")
	}

	rt, cleanup, err := newRuntime()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	errOut := cmd.ErrOrStderr()

	total := 0
	imported := 0
	for dec.More() {
		var entry model.ManagedContainer
		if err := dec.Decode(&entry); err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "malformed import entry", err)
		}
		total++

		if err := entry.Validate(); err != nil {
			fmt.Fprintf(errOut, "Skipping entry %d: %v\n", total, err)
			continue
		}

		// The stored args string is re-encoded into the options label
		// verbatim and re-split on whitespace for the run flags, the
		// same way update reuses it.
		labels := docker.BuildLabels(entry.Args)
		if err := rt.CreateContainer(ctx, entry.Name, entry.Image,
			docker.SplitOptions(entry.Args), labels); err != nil {
			fmt.Fprintf(errOut, "Failed to import container %q: %v\n", entry.Name, err)
			continue
		}

		imported++
	}

	fmt.Fprintf(errOut, "Imported %d of %d container(s)\n", imported, total)
	return nil
}
