package testparser

import (
	"reflect"
	"testing"
)

func TestRegistry(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()

	tests := []struct {
		format   string
		wantName string
	}{
		{"go", "go"},
		{"text", "go"},
		{"GO", "go"},
		{"json", "json"},
		{"go-json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			parser := registry.GetParser(tt.format)
			if parser == nil {
				t.Fatalf("GetParser(%s): got nil, want parser", tt.format)
			}
			if parser.Name() != tt.wantName {
				t.Errorf("GetParser(%s).Name(): got %s, want %s", tt.format, parser.Name(), tt.wantName)
			}
		})
	}

	if got := registry.GetParser("junit"); got != nil {
		t.Errorf("GetParser(junit): got %s, want nil", got.Name())
	}
}

func TestRegistry_RegisterParser(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	registry.RegisterParser("Custom", &GoParser{})

	if registry.GetParser("custom") == nil {
		t.Error("GetParser(custom): got nil after RegisterParser")
	}
	want := []string{"custom", "go", "go-json", "json", "text"}
	if got := registry.Formats(); !reflect.DeepEqual(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()

	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"json stream", `{"Action":"start","Package":"p"}`, "json"},
		{"json after blank lines", "\n\n  {\"Action\":\"run\"}", "json"},
		{"plain output", "=== RUN   TestFoo\n{not json}", "go"},
		{"empty", "", "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := registry.Detect(tt.output).Name(); got != tt.want {
				t.Errorf("Detect() = %s, want %s", got, tt.want)
			}
		})
	}
}
