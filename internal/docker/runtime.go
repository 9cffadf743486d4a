package docker

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	imagetypes "github.com/docker/docker/api/types/image"

	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// Runtime is the capability interface over the external container engine.
// It exposes exactly the operations the commands consume; the cli layer
// depends only on this interface, so tests can substitute a fake without
// spawning processes or a daemon.
type Runtime interface {
	// CreateContainer creates and starts a detached container with an
	// always-restart policy, the given labels, and the extra run
	// arguments inserted verbatim before the image reference.
	CreateContainer(ctx context.Context, name, image string, extraArgs []string, labels map[string]string) error

	// ListManaged returns all containers (including stopped ones) that
	// carry the marker label.
	ListManaged(ctx context.Context) ([]model.ContainerInfo, error)

	// InspectContainer returns the image reference and label set of a
	// single container, looked up by name.
	InspectContainer(ctx context.Context, name string) (model.ContainerInfo, error)

	// Lifecycle operations on a single container, by name.
	StartContainer(ctx context.Context, name string) error
	StopContainer(ctx context.Context, name string) error
	RestartContainer(ctx context.Context, name string) error
	RemoveContainer(ctx context.Context, name string) error

	// PullImage pulls an image through the engine.
	PullImage(ctx context.Context, image string) error
}

// DebugFunc receives a human-readable description of each external call
// just before it is executed. A nil DebugFunc disables echoing.
type DebugFunc func(format string, args ...interface{})

// Engine implements Runtime against a real container engine.
//
// Every operation except CreateContainer goes through the engine API via
// the SDK client. CreateContainer shells out to the engine CLI binary:
// the extra run arguments are free-form `docker run` flags preserved from
// creation time, and only the CLI can interpret them.
type Engine struct {
	cli *Client

	// binary is the engine CLI executable used by the exec path,
	// "docker" by default. Configurable so drop-in replacements such as
	// podman can be used.
	binary string

	debugf DebugFunc
}

var _ Runtime = (*Engine)(nil)

// NewEngine creates an Engine on top of an established client connection.
// binary must name the engine CLI executable; debugf may be nil.
func NewEngine(cli *Client, binary string, debugf DebugFunc) *Engine {
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}
	return &Engine{cli: cli, binary: binary, debugf: debugf}
}

// CreateContainer runs `<binary> run -d --restart always --name <name>
// --label ... <extraArgs...> <image>` as a child process. The extra
// arguments are passed through verbatim, after the fixed flags and
// before the image, matching the engine CLI's flag-then-image order.
//
// On failure the child's numeric exit code is surfaced in the error
// message along with its combined output.
func (e *Engine) CreateContainer(ctx context.Context, name, image string, extraArgs []string, labels map[string]string) error {
	args := make([]string, 0, len(extraArgs)+len(labels)*2+8)
	args = append(args, "run", "-d", "--restart", "always", "--name", name)
	args = append(args, LabelFlags(labels)...)
	args = append(args, extraArgs...)
	args = append(args, image)

	e.debugf("%s %s", e.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, e.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		message := fmt.Sprintf("failed to create container %q: %s", name, strings.TrimSpace(string(output)))
		if exitErr, ok := err.(*exec.ExitError); ok {
			message = fmt.Sprintf("%s (exit code %d)", message, exitErr.ExitCode())
		}
		return model.WrapCLIError(model.ExitGeneralError, message, err)
	}
	return nil
}

// ListManaged queries the engine for all containers carrying the marker
// label. The All flag includes stopped and exited containers, which
// export needs to see.
func (e *Engine) ListManaged(ctx context.Context) ([]model.ContainerInfo, error) {
	e.debugf("%s ps -a --filter label=%s=%s", e.binary, LabelManaged, ManagedByValue)

	containers, err := e.cli.Inner().ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: ManagedFilter(),
	})
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to list containers", err)
	}

	result := make([]model.ContainerInfo, 0, len(containers))
	for _, c := range containers {
		result = append(result, summaryToInfo(c))
	}
	return result, nil
}

// summaryToInfo converts an engine API container summary to the domain
// model. The engine returns names with a leading "/" that is stripped
// here once, so no caller ever sees it.
func summaryToInfo(c types.Container) model.ContainerInfo {
	name := ""
	if len(c.Names) > 0 {
		name = strings.TrimPrefix(c.Names[0], "/")
	}
	return model.ContainerInfo{
		ID:     c.ID,
		Name:   name,
		Image:  c.Image,
		State:  c.State,
		Labels: c.Labels,
	}
}

// InspectContainer looks up a single container by name and returns its
// image reference and full label set.
func (e *Engine) InspectContainer(ctx context.Context, name string) (model.ContainerInfo, error) {
	e.debugf("%s inspect %s", e.binary, name)

	detail, err := e.cli.Inner().ContainerInspect(ctx, name)
	if err != nil {
		return model.ContainerInfo{}, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to inspect container %q", name), err)
	}

	info := model.ContainerInfo{
		ID:   detail.ID,
		Name: strings.TrimPrefix(detail.Name, "/"),
	}
	if detail.Config != nil {
		info.Image = detail.Config.Image
		info.Labels = detail.Config.Labels
	}
	if detail.State != nil {
		info.State = detail.State.Status
	}
	return info, nil
}

// StartContainer starts a stopped container by name.
func (e *Engine) StartContainer(ctx context.Context, name string) error {
	e.debugf("%s start %s", e.binary, name)

	if err := e.cli.Inner().ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to start container %q", name), err)
	}
	return nil
}

// StopContainer stops a running container by name. A nil timeout in
// StopOptions uses the engine's default grace period before SIGKILL.
func (e *Engine) StopContainer(ctx context.Context, name string) error {
	e.debugf("%s stop %s", e.binary, name)

	if err := e.cli.Inner().ContainerStop(ctx, name, container.StopOptions{}); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to stop container %q", name), err)
	}
	return nil
}

// RestartContainer restarts a container by name.
func (e *Engine) RestartContainer(ctx context.Context, name string) error {
	e.debugf("%s restart %s", e.binary, name)

	if err := e.cli.Inner().ContainerRestart(ctx, name, container.StopOptions{}); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to restart container %q", name), err)
	}
	return nil
}

// RemoveContainer removes a container by name. The container must be
// stopped first; this tool always issues a stop before remove.
func (e *Engine) RemoveContainer(ctx context.Context, name string) error {
	e.debugf("%s rm %s", e.binary, name)

	if err := e.cli.Inner().ContainerRemove(ctx, name, container.RemoveOptions{}); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to remove container %q", name), err)
	}
	return nil
}

// PullImage pulls an image through the engine. The pull endpoint streams
// progress JSON; the stream must be drained for the pull to complete,
// then closed.
func (e *Engine) PullImage(ctx context.Context, image string) error {
	e.debugf("%s pull %s", e.binary, image)

	reader, err := e.cli.Inner().ImagePull(ctx, image, imagetypes.PullOptions{})
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to pull image %q", image), err)
	}
	defer reader.Close()

	if _, err := io.Copy(io.Discard, reader); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("pull of image %q was interrupted", image), err)
	}
	return nil
}
