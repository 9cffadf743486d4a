package model

import (
	"fmt"
)

// ManagedContainer is the export/import wire representation of a single
// managed container. It is the element type of the JSON array written by
// "docker-utility export" and read by "docker-utility import".
//
// The schema is fixed:
//
//	{ "name": "web", "image": "nginx:1.27", "args": "-p 80:80 -e FOO=bar" }
//
// Args holds the space-joined extra run arguments exactly as they were
// supplied at creation time (the decoded form of the options label).
// It may be empty when the container was created without extra arguments.
type ManagedContainer struct {
	// Name is the container name with no leading "/" path separator.
	Name string `json:"name"`

	// Image is the image reference the container was created from.
	Image string `json:"image"`

	// Args is the space-joined original extra run arguments.
	Args string `json:"args"`
}

// Validate checks that the entry carries the fields required to recreate
// a container. Both name and image must be non-empty; args may be empty.
func (m *ManagedContainer) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("container entry has no name")
	}
	if m.Image == "" {
		return fmt.Errorf("container %q has no image", m.Name)
	}
	return nil
}

// ContainerInfo holds runtime information about a container as reported
// by the engine. This data is fetched from the engine API on demand and
// never persisted by this tool.
type ContainerInfo struct {
	// ID is the engine's container identifier (SHA-256 hash prefix).
	ID string

	// Name is the human-readable container name, stripped of the leading
	// "/" the engine API prepends.
	Name string

	// Image is the image reference the container runs.
	Image string

	// State is the engine's container state string
	// (e.g. "running", "exited", "created").
	State string

	// Labels is the full label set on the container, including the
	// management labels this tool attaches at creation.
	Labels map[string]string
}

// ExitCode defines the CLI process exit codes. Every failure path —
// usage errors, missing labels, engine-call failures — exits with code 1;
// only a fully successful invocation exits 0. Scripts should treat any
// non-zero status as "the operation did not complete".
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates the command failed. All failure
	// categories share this code.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
