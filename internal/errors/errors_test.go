package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTestgrepError_Error(t *testing.T) {
	cause := errors.New("yaml: line 3: bad indentation")

	tests := []struct {
		name     string
		err      *TestgrepError
		expected string
	}{
		{
			name:     "message only",
			err:      &TestgrepError{Message: "something failed"},
			expected: "something failed",
		},
		{
			name:     "with manifest",
			err:      &TestgrepError{Manifest: "specs/cart.testgrep.yaml", Message: "invalid manifest"},
			expected: "specs/cart.testgrep.yaml: invalid manifest",
		},
		{
			name:     "with manifest and cause",
			err:      &TestgrepError{Manifest: "a.yaml", Message: "invalid manifest", Cause: cause},
			expected: "a.yaml: invalid manifest: yaml: line 3: bad indentation",
		},
		{
			name:     "with cause only",
			err:      &TestgrepError{Message: "read failed", Cause: cause},
			expected: "read failed: yaml: line 3: bad indentation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTestgrepError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &TestgrepError{
		Message: "wrapper",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}

	errNoCause := &TestgrepError{Message: "no cause"}
	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestTestgrepError_ExitCode(t *testing.T) {
	tests := []struct {
		name     string
		kind     ErrorKind
		expected int
	}{
		{"runtime", KindRuntime, ExitRuntimeError},
		{"config", KindConfig, ExitConfigError},
		{"validation", KindValidation, ExitConfigError},
		{"environment", KindEnvironment, ExitEnvironmentError},
		{"not found", KindNotFound, ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &TestgrepError{Kind: tt.kind}
			if got := err.ExitCode(); got != tt.expected {
				t.Errorf("ExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *TestgrepError
		kind     ErrorKind
		message  string
		exitCode int
	}{
		{"Wrap", Wrap(nil, "test error"), KindRuntime, "test error", ExitRuntimeError},
		{"Config", Config("invalid config"), KindConfig, "invalid config", ExitConfigError},
		{"Configf", Configf("invalid burn value: %d", 0), KindConfig, "invalid burn value: 0", ExitConfigError},
		{"Environment", Environment("no access"), KindEnvironment, "no access", ExitEnvironmentError},
		{"Environmentf", Environmentf("cannot read %s", "x"), KindEnvironment, "cannot read x", ExitEnvironmentError},
		{"NotFound", NotFound("manifest", "x.yaml"), KindNotFound, "manifest not found: x.yaml", ExitRuntimeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Message != tt.message {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.message)
			}
			if got := tt.err.ExitCode(); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
		})
	}
}

func TestWrapAndManifest(t *testing.T) {
	cause := errors.New("boom")

	w := Wrap(cause, "loading corpus")
	if w.Kind != KindRuntime || w.Cause != cause {
		t.Errorf("Wrap() = %+v", w)
	}

	m := Manifest("a.yaml", "schema validation failed", cause)
	if m.Kind != KindValidation || m.Manifest != "a.yaml" {
		t.Errorf("Manifest() = %+v", m)
	}
	if m.ExitCode() != ExitConfigError {
		t.Errorf("Manifest().ExitCode() = %d, want %d", m.ExitCode(), ExitConfigError)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("x"), ExitRuntimeError},
		{"config", Config("x"), ExitConfigError},
		{"environment", Environment("x"), ExitEnvironmentError},
		{"wrapped config", fmt.Errorf("outer: %w", Config("x")), ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
