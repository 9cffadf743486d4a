package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
)

// TestList verifies the table output includes every managed container
// with its image and state.
func TestList(t *testing.T) {
	fake := newFakeRuntime()
	fake.addContainer("web", "nginx:1.27", "running", docker.BuildLabels("-p 8080:80"))
	fake.addContainer("cache", "redis:7", "exited", docker.BuildLabels(""))
	withFakeRuntime(t, fake)

	out, _, err := runCLI(t, nil, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "web")
	assert.Contains(t, out, "nginx:1.27")
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "cache")
	assert.Contains(t, out, "exited")
}

// TestList_Empty verifies the placeholder message when no managed
// containers exist.
func TestList_Empty(t *testing.T) {
	fake := newFakeRuntime()
	withFakeRuntime(t, fake)

	out, _, err := runCLI(t, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No managed containers found.")
}
