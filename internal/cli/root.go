// Package cli implements the cobra-based CLI commands for docker-utility.
//
// Each subcommand (create, list, args, start, stop, restart, update,
// remove, export, import, version) is defined in its own file within this
// package. This file defines the root command, the global --debug flag,
// and the error-to-exit-code translation.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/docker-utility/internal/config"
	"github.com/mmr-tortoise/docker-utility/internal/docker"
	"github.com/mmr-tortoise/docker-utility/internal/model"
)

// debug controls echoing of every external engine call before execution.
// It is bound to the persistent --debug flag on the root command and may
// also be switched on by the configuration file.
var debug bool

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package for version output.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// newRuntime creates the engine-backed Runtime used by all commands,
// returning it together with a cleanup function. It is a package variable
// so tests can substitute a fake runtime without a daemon or child
// processes.
var newRuntime = func() (docker.Runtime, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitGeneralError, "failed to load configuration", err)
	}
	if cfg.Debug {
		debug = true
	}

	cli, err := docker.NewClient()
	if err != nil {
		return nil, nil, err // NewClient already returns a CLIError
	}

	engine := docker.NewEngine(cli, cfg.Binary, DebugLog)
	return engine, func() { _ = cli.Close() }, nil
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself performs no engine call — invoked without a
// subcommand it prints the usage text and fails, so scripts calling the
// tool incorrectly get a non-zero status.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docker-utility",
		Short: "Manage a labeled subset of containers on this host",
		Long: `docker-utility manages a curated subset of containers on a single host by
delegating to the container engine.

Containers it creates are tagged with a marker label so they can be told
apart from everything else on the host, and their original run arguments
are preserved in a second label. That stored argument string is what lets
"update" recreate a container with a freshly pulled image, and what
"export"/"import" move between hosts as JSON.`,

		// Usage and errors are printed by Execute, not by cobra itself.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// ArbitraryArgs routes unmatched first tokens here instead of
		// letting cobra reject them before the command runs. Both a bare
		// invocation and an unknown subcommand are usage errors: show the
		// full help text, then fail with exit code 1.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			if len(args) == 0 {
				return model.NewCLIError(model.ExitGeneralError, "no command specified")
			}
			return model.NewCLIError(model.ExitGeneralError,
				fmt.Sprintf("unknown command %q for %q", args[0], cmd.Name()))
		},
	}

	// PersistentFlags are inherited by every subcommand.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Echo every engine call before executing it")

	rootCmd.AddCommand(NewCreateCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewArgsCommand())
	rootCmd.AddCommand(NewStartCommand())
	rootCmd.AddCommand(NewStopCommand())
	rootCmd.AddCommand(NewRestartCommand())
	rootCmd.AddCommand(NewUpdateCommand())
	rootCmd.AddCommand(NewRemoveCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit codes; every other error exits
// with code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		if cliErr, ok := err.(*model.CLIError); ok {
			os.Exit(int(cliErr.Code))
		}
		os.Exit(int(model.ExitGeneralError))
	}
}

// DebugLog prints a message to stderr only when debug mode is enabled.
// The engine passes every external call through here before executing
// it, so --debug shows the exact command lines and API operations.
func DebugLog(format string, args ...interface{}) {
	if debug {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}

// requireName validates the positional container name shared by most
// subcommands. cobra guarantees the argument count; this guards against
// an explicitly empty string (e.g. `docker-utility start ""`).
func requireName(name string) error {
	if name == "" {
		return model.NewCLIError(model.ExitGeneralError, "container name must not be empty")
	}
	return nil
}

// requireImage validates the positional image reference on create.
func requireImage(image string) error {
	if image == "" {
		return model.NewCLIError(model.ExitGeneralError, "image reference must not be empty")
	}
	return nil
}
