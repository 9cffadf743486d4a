package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/mmr-tortoise/docker-utility/internal/docker"
	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// fakeRuntime is an in-memory Runtime for command tests. It keeps a
// container map keyed by name, records every call in order, and lets
// individual operations be forced to fail.
type fakeRuntime struct {
	containers map[string]model.ContainerInfo
	order      []string

	// per-operation forced failures
	createErr  map[string]error
	inspectErr map[string]error
	startErr   error
	stopErr    error
	restartErr error
	removeErr  error
	pullErr    error

	// calls records each operation as "op arg" in invocation order.
	calls []string

	// created records every CreateContainer invocation verbatim.
	created []createCall
}

type createCall struct {
	name      string
	image     string
	extraArgs []string
	labels    map[string]string
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		containers: make(map[string]model.ContainerInfo),
		createErr:  make(map[string]error),
		inspectErr: make(map[string]error),
	}
}

var _ docker.Runtime = (*fakeRuntime)(nil)

// addContainer seeds a pre-existing container.
func (f *fakeRuntime) addContainer(name, image, state string, labels map[string]string) {
	f.containers[name] = model.ContainerInfo{
		ID:     "id-" + name,
		Name:   name,
		Image:  image,
		State:  state,
		Labels: labels,
	}
	f.order = append(f.order, name)
}

func (f *fakeRuntime) CreateContainer(ctx context.Context, name, image string, extraArgs []string, labels map[string]string) error {
	f.calls = append(f.calls, "create "+name)
	f.created = append(f.created, createCall{
		name:      name,
		image:     image,
		extraArgs: append([]string(nil), extraArgs...),
		labels:    labels,
	})
	if err := f.createErr[name]; err != nil {
		return err
	}
	f.addContainer(name, image, "running", labels)
	return nil
}

func (f *fakeRuntime) ListManaged(ctx context.Context) ([]model.ContainerInfo, error) {
	f.calls = append(f.calls, "list")
	result := make([]model.ContainerInfo, 0, len(f.order))
	for _, name := range f.order {
		if c, ok := f.containers[name]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeRuntime) InspectContainer(ctx context.Context, name string) (model.ContainerInfo, error) {
	f.calls = append(f.calls, "inspect "+name)
	if err := f.inspectErr[name]; err != nil {
		return model.ContainerInfo{}, err
	}
	c, ok := f.containers[name]
	if !ok {
		return model.ContainerInfo{}, fmt.Errorf("no such container: %s", name)
	}
	return c, nil
}

func (f *fakeRuntime) StartContainer(ctx context.Context, name string) error {
	f.calls = append(f.calls, "start "+name)
	if f.startErr != nil {
		return f.startErr
	}
	return f.setState(name, "running")
}

func (f *fakeRuntime) StopContainer(ctx context.Context, name string) error {
	f.calls = append(f.calls, "stop "+name)
	if f.stopErr != nil {
		return f.stopErr
	}
	return f.setState(name, "exited")
}

func (f *fakeRuntime) RestartContainer(ctx context.Context, name string) error {
	f.calls = append(f.calls, "restart "+name)
	if f.restartErr != nil {
		return f.restartErr
	}
	return f.setState(name, "running")
}

func (f *fakeRuntime) RemoveContainer(ctx context.Context, name string) error {
	f.calls = append(f.calls, "remove "+name)
	if f.removeErr != nil {
		return f.removeErr
	}
	if _, ok := f.containers[name]; !ok {
		return fmt.Errorf("no such container: %s", name)
	}
	delete(f.containers, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRuntime) PullImage(ctx context.Context, image string) error {
	f.calls = append(f.calls, "pull "+image)
	return f.pullErr
}

func (f *fakeRuntime) setState(name, state string) error {
	c, ok := f.containers[name]
	if !ok {
		return fmt.Errorf("no such container: %s", name)
	}
	c.State = state
	f.containers[name] = c
	return nil
}

// withFakeRuntime substitutes the package's runtime factory for the
// duration of the test.
func withFakeRuntime(t *testing.T, rt docker.Runtime) {
	t.Helper()
	orig := newRuntime
	newRuntime = func() (docker.Runtime, func(), error) {
		return rt, func() {}, nil
	}
	t.Cleanup(func() { newRuntime = orig })
}

// newReader wraps a string as the stdin argument of runCLI.
func newReader(s string) io.Reader {
	return strings.NewReader(s)
}

// runCLI executes the CLI with the given argv and optional stdin,
// returning captured stdout, stderr, and the command error.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}
