package testparser

import (
	"sort"
	"strings"
)

// Registry maps output format names to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a registry holding the built-in parsers.
func NewRegistry() *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	goParser := &GoParser{}
	jsonParser := &JSONParser{}

	r.parsers["go"] = goParser
	r.parsers["text"] = goParser
	r.parsers["json"] = jsonParser
	r.parsers["go-json"] = jsonParser

	return r
}

// GetParser returns the parser for format, or nil.
func (r *Registry) GetParser(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// RegisterParser adds a parser under format.
func (r *Registry) RegisterParser(format string, parser Parser) {
	r.parsers[strings.ToLower(format)] = parser
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		formats = append(formats, name)
	}
	sort.Strings(formats)
	return formats
}

// Detect picks a parser by looking at the output: go test -json streams
// start with a JSON object, anything else is read as plain go test output.
func (r *Registry) Detect(output string) Parser {
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "{") {
			return r.parsers["json"]
		}
		break
	}
	return r.parsers["go"]
}
