// Package testgrep provides public constants for external tools that run
// the testgrep CLI.
package testgrep

// Exit codes returned by the testgrep CLI, so callers can check them
// symbolically. Selecting no tests is not an error.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates an unexpected runtime failure.
	ExitFailure = 1

	// ExitConfigError indicates invalid settings, flags or manifests.
	ExitConfigError = 2

	// ExitEnvError indicates an unreadable file or directory.
	ExitEnvError = 3
)
