// Package main is the entry point for the docker-utility CLI.
//
// The binary manages a labeled subset of containers on a single host by
// delegating to the container engine. All functionality lives in the
// internal/cli package, which defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process; during development they default to "dev",
// "none", and "unknown".
package main

import (
	"github.com/mmr-tortoise/docker-utility/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package, keeping the
	// build system decoupled from the CLI framework.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
