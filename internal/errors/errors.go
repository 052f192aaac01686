// Package errors provides structured error types and exit codes for testgrep.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (unexpected failure)
	ExitConfigError      = 2 // Configuration error (invalid settings, invalid manifest)
	ExitEnvironmentError = 3 // Environment error (unreadable file or directory)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// TestgrepError is the base error type for testgrep.
type TestgrepError struct {
	Kind     ErrorKind
	Message  string
	Manifest string // Manifest path if applicable
	Cause    error  // Underlying error
}

func (e *TestgrepError) Error() string {
	msg := e.Message
	if e.Manifest != "" {
		msg = fmt.Sprintf("%s: %s", e.Manifest, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TestgrepError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *TestgrepError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// Config creates a new configuration error.
func Config(message string) *TestgrepError {
	return &TestgrepError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...any) *TestgrepError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *TestgrepError {
	return &TestgrepError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...any) *TestgrepError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *TestgrepError {
	return &TestgrepError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// Manifest creates a validation error for a specific manifest file.
func Manifest(path, message string, cause error) *TestgrepError {
	return &TestgrepError{
		Kind:     KindValidation,
		Manifest: path,
		Message:  message,
		Cause:    cause,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *TestgrepError {
	return &TestgrepError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error, looking through wrapped
// errors for a *TestgrepError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var te *TestgrepError
	if stderrors.As(err, &te) {
		return te.ExitCode()
	}
	return ExitRuntimeError
}
