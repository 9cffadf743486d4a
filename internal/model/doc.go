// Package model defines the domain types and value objects for the
// docker-utility CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities are transient representations reconstructed from container
// labels at runtime — the engine's own container metadata is the sole state
// store, there are no persistent files or databases.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
