package docker

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/docker/docker/client"

	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// defaultPingTimeout is the maximum duration to wait for an engine
// response during a Ping. 5 seconds covers slow environments such as
// Docker Desktop on macOS.
const defaultPingTimeout = 5 * time.Second

// windowsEngineHost is the fixed named-pipe URI Docker Desktop listens
// on. The path is not customizable via the filesystem, so no probing is
// possible or needed.
const windowsEngineHost = "npipe:////./pipe/docker_engine"

// Client wraps the Docker Engine SDK client. It handles automatic socket
// detection across platforms (Linux, macOS, Windows) and provides a
// Ping method for verifying daemon connectivity.
//
// Usage:
//
//	c, err := docker.NewClient()
//	if err != nil { /* handle */ }
//	defer c.Close()
type Client struct {
	// inner is the underlying SDK client. It is wrapped rather than
	// embedded to keep the exposed API surface small.
	inner *client.Client
}

// NewClient creates a new engine client with automatic socket detection.
//
// Detection priority:
//  1. DOCKER_HOST environment variable (used as-is when set)
//  2. Platform default socket paths:
//     - Linux: /var/run/docker.sock
//     - macOS: /var/run/docker.sock, then ~/.docker/run/docker.sock
//     - Windows: npipe:////./pipe/docker_engine
func NewClient() (*Client, error) {
	if host := os.Getenv("DOCKER_HOST"); host != "" {
		return newClientWithHost(host)
	}

	host, err := detectHost()
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "engine socket not found", err)
	}
	return newClientWithHost(host)
}

// newClientWithHost creates a client connected to the given host string
// (e.g. "unix:///var/run/docker.sock"). API version negotiation keeps the
// client compatible with whatever daemon version is running.
func newClientWithHost(host string) (*Client, error) {
	c, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to create engine client for host %q", host), err)
	}
	return &Client{inner: c}, nil
}

// detectHost determines the engine socket for the current platform.
// Socket existence is checked rather than attempting a connection;
// Ping handles connectivity verification separately.
func detectHost() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return detectUnixSocket([]string{
			"/var/run/docker.sock",
		})

	case "darwin":
		// Newer Docker Desktop versions place the socket under the
		// user's home directory instead of symlinking /var/run.
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return detectUnixSocket([]string{"/var/run/docker.sock"})
		}
		return detectUnixSocket([]string{
			"/var/run/docker.sock",
			homeDir + "/.docker/run/docker.sock",
		})

	case "windows":
		// Windows exposes the engine over a named pipe at a fixed path.
		// Neither os.Stat nor the portable net dialers can probe a named
		// pipe, so the URI is handed to the SDK as-is; its go-winio based
		// transport performs the actual dial, and Ping reports whether
		// the daemon is reachable.
		return windowsEngineHost, nil

	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// detectUnixSocket probes socket paths in order and returns the engine
// host URI for the first one that exists on the filesystem.
func detectUnixSocket(paths []string) (string, error) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return "unix://" + path, nil
		}
	}
	return "", fmt.Errorf("engine socket not found at any of: %v — is the engine running?", paths)
}

// Ping verifies that the engine daemon is reachable and responsive.
func (c *Client) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if _, err := c.inner.Ping(pingCtx); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"engine daemon is not responding — is it running?", err)
	}
	return nil
}

// Inner exposes the underlying SDK client for the engine implementation.
func (c *Client) Inner() *client.Client {
	return c.inner
}

// Close releases the client's underlying HTTP connection.
func (c *Client) Close() error {
	return c.inner.Close()
}
