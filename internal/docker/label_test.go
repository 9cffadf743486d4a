package docker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptionsRoundTrip verifies that decode(encode(s)) == s for
// representative argument strings, including the empty string and
// strings with embedded spaces.
func TestOptionsRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		options string
	}{
		{"empty", ""},
		{"single flag", "-d"},
		{"port mapping", "-p 8080:80"},
		{"several flags", "-p 8080:80 -e FOO=bar -v /data:/data"},
		{"embedded spaces", `-e GREETING=hello world`},
		{"unicode", "-e MSG=héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeOptions(tt.options)
			decoded, err := DecodeOptions(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.options, decoded)
		})
	}
}

// TestEncodeOptions_KnownValue pins the encoding to standard base64 so
// label values stay readable by `base64 -d` and compatible with
// containers created by earlier versions of the tool.
func TestEncodeOptions_KnownValue(t *testing.T) {
	assert.Equal(t, "LXAgODA4MDo4MA==", EncodeOptions("-p 8080:80"))
	assert.Equal(t, "", EncodeOptions(""))
}

// TestDecodeOptions_Invalid verifies that a corrupted label value is
// reported as an error rather than decoded to garbage.
func TestDecodeOptions_Invalid(t *testing.T) {
	_, err := DecodeOptions("not!base64!!")
	assert.Error(t, err)
}

// TestSplitOptions verifies whitespace splitting for the update/import
// reuse path, including the flattening of arguments that contained
// literal spaces at creation time.
func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name     string
		options  string
		expected []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"simple", "-p 8080:80", []string{"-p", "8080:80"}},
		{"multiple spaces", "-p  8080:80   -d", []string{"-p", "8080:80", "-d"}},
		// A value that contained a literal space is split apart: the
		// stored format is a flattened string, not a token list.
		{"flattened value", "-e GREETING=hello world", []string{"-e", "GREETING=hello", "world"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitOptions(tt.options))
		})
	}
}

// TestBuildLabels verifies that every created container carries exactly
// the marker label and the encoded options label.
func TestBuildLabels(t *testing.T) {
	labels := BuildLabels("-p 8080:80")

	require.Len(t, labels, 2)
	assert.Equal(t, ManagedByValue, labels[LabelManaged])
	assert.Equal(t, EncodeOptions("-p 8080:80"), labels[LabelOptions])
}

// TestBuildLabels_EmptyOptions verifies that a container created without
// extra arguments still gets an options label (encoding the empty string).
func TestBuildLabels_EmptyOptions(t *testing.T) {
	labels := BuildLabels("")

	require.Len(t, labels, 2)
	assert.Equal(t, "", labels[LabelOptions])

	decoded, err := DecodeOptions(labels[LabelOptions])
	require.NoError(t, err)
	assert.Equal(t, "", decoded)
}

// TestLabelFlags verifies the CLI rendering used by the exec-based
// create path: marker first, then options, each as --label key=value.
func TestLabelFlags(t *testing.T) {
	flags := LabelFlags(BuildLabels("-d"))

	joined := strings.Join(flags, " ")
	assert.Equal(t,
		"--label managed-by=docker-utility --label docker-utility-options="+EncodeOptions("-d"),
		joined)
}

// TestManagedFilter verifies the server-side label filter matches the
// marker label exactly.
func TestManagedFilter(t *testing.T) {
	args := ManagedFilter()

	assert.True(t, args.Contains("label"))
	assert.Equal(t, []string{"managed-by=docker-utility"}, args.Get("label"))
}
