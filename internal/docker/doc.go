// Package docker provides the engine client and container operations for
// the docker-utility CLI.
//
// This package handles:
//   - Engine client initialization with automatic socket detection
//     (Linux, macOS, Windows)
//   - The management labels that mark containers as owned by this tool
//     and persist their original creation arguments (labels are the sole
//     state storage mechanism — there is no separate database)
//   - The Runtime capability interface: create, list, inspect, start,
//     stop, restart, remove, pull
//
// Most operations go through github.com/docker/docker/client with API
// version negotiation enabled. Container creation is the exception: the
// stored extra arguments are free-form `docker run` flags, so creation
// shells out to the engine CLI, which is the only component able to
// interpret them.
package docker
