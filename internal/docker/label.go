package docker

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/filters"
)

// Label constants define the two container labels that make up this tool's
// entire persisted data model. Both are attached atomically with the
// container at creation and live exactly as long as the container does.
const (
	// LabelManaged marks a container as managed by docker-utility.
	// A container is "managed" if and only if it carries this label —
	// no other state distinguishes it from unrelated containers on the
	// same host.
	LabelManaged = "managed-by"

	// ManagedByValue is the constant value of the LabelManaged label.
	ManagedByValue = "docker-utility"

	// LabelOptions stores the base64 encoding of the space-joined extra
	// run arguments the user supplied at creation time. Decoding it
	// reproduces the original argument string byte for byte, which is
	// what allows "update" to recreate a container with a newer image
	// while preserving its run options.
	LabelOptions = "docker-utility-options"
)

// EncodeOptions encodes a space-joined argument string into the options
// label value. The empty string encodes to the empty string's base64
// form, so a container created without extra arguments still carries
// the label.
func EncodeOptions(options string) string {
	return base64.StdEncoding.EncodeToString([]byte(options))
}

// DecodeOptions decodes an options label value back into the original
// space-joined argument string.
func DecodeOptions(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid options label value %q: %w", encoded, err)
	}
	return string(decoded), nil
}

// SplitOptions splits a decoded options string back into individual
// arguments for reuse in a create call (update and import paths).
//
// Splitting is on whitespace runs. Arguments that contained literal
// spaces at creation time are broken apart here: the label stores a
// flattened string, so the original token boundaries are unrecoverable.
// This mirrors the create/reuse asymmetry of the stored format and is
// deliberate — changing it would change the label and export contracts.
func SplitOptions(options string) []string {
	return strings.Fields(options)
}

// BuildLabels constructs the label map attached to every container this
// tool creates. The options parameter is the space-joined extra argument
// string (may be empty).
//
// Every managed container carries exactly these two labels: the marker
// that makes it discoverable, and the encoded options that make it
// recreatable.
func BuildLabels(options string) map[string]string {
	return map[string]string{
		LabelManaged: ManagedByValue,
		LabelOptions: EncodeOptions(options),
	}
}

// LabelFlags renders the label map as `--label key=value` CLI arguments
// for the exec-based create path. Keys are emitted in a fixed order
// (marker first) so the generated command line is stable.
func LabelFlags(labels map[string]string) []string {
	flags := make([]string, 0, len(labels)*2)
	for _, key := range []string{LabelManaged, LabelOptions} {
		if value, ok := labels[key]; ok {
			flags = append(flags, "--label", key+"="+value)
		}
	}
	// Any additional labels follow in map order. The tool itself only
	// ever sets the two fixed keys.
	for key, value := range labels {
		if key == LabelManaged || key == LabelOptions {
			continue
		}
		flags = append(flags, "--label", key+"="+value)
	}
	return flags
}

// ManagedFilter returns the engine API filter that matches only
// containers carrying the marker label. Filtering server-side is cheaper
// than listing everything and filtering in Go.
func ManagedFilter() filters.Args {
	return filters.NewArgs(
		filters.Arg("label", LabelManaged+"="+ManagedByValue),
	)
}
