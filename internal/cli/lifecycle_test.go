package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
)

// TestStartStopRestart verifies the single-call lifecycle commands and
// their success messages.
func TestStartStopRestart(t *testing.T) {
	tests := []struct {
		command  string
		expected string
	}{
		{"start", `Started container "web"`},
		{"stop", `Stopped container "web"`},
		{"restart", `Restarted container "web"`},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			fake := newFakeRuntime()
			fake.addContainer("web", "nginx:1.27", "exited", docker.BuildLabels(""))
			withFakeRuntime(t, fake)

			out, _, err := runCLI(t, nil, tt.command, "web")
			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
			assert.Equal(t, []string{tt.command + " web"}, fake.calls)
		})
	}
}

// TestLifecycle_EngineFailure verifies that a failing lifecycle call
// surfaces as a command error.
func TestLifecycle_EngineFailure(t *testing.T) {
	fake := newFakeRuntime()
	fake.startErr = errors.New("no such container")
	withFakeRuntime(t, fake)

	_, _, err := runCLI(t, nil, "start", "ghost")
	assert.Error(t, err)
}

// TestRemove verifies the stop-then-remove sequence on an existing
// container.
func TestRemove(t *testing.T) {
	fake := newFakeRuntime()
	fake.addContainer("web", "nginx:1.27", "running", docker.BuildLabels(""))
	withFakeRuntime(t, fake)

	out, _, err := runCLI(t, nil, "remove", "web")
	require.NoError(t, err)

	assert.Equal(t, []string{"stop web", "remove web"}, fake.calls)
	assert.Contains(t, out, `Removed container "web"`)
	_, exists := fake.containers["web"]
	assert.False(t, exists)
}

// TestRemove_IgnoresStopFailure verifies that remove succeeds even when
// the preceding stop fails (e.g. the container is already stopped);
// only the remove call's result decides the outcome.
func TestRemove_IgnoresStopFailure(t *testing.T) {
	fake := newFakeRuntime()
	fake.addContainer("web", "nginx:1.27", "exited", docker.BuildLabels(""))
	fake.stopErr = errors.New("container not running")
	withFakeRuntime(t, fake)

	_, _, err := runCLI(t, nil, "remove", "web")
	require.NoError(t, err)
	assert.Equal(t, []string{"stop web", "remove web"}, fake.calls)
}

// TestRemove_Nonexistent verifies that removing an unknown name attempts
// both calls, ignores the stop failure, and surfaces the remove failure.
func TestRemove_Nonexistent(t *testing.T) {
	fake := newFakeRuntime()
	withFakeRuntime(t, fake)

	_, _, err := runCLI(t, nil, "remove", "ghost")
	require.Error(t, err)
	assert.Equal(t, []string{"stop ghost", "remove ghost"}, fake.calls)
}
