package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// detectUnknownKeys returns a warning for every top-level key of a settings
// file that does not correspond to a Settings field.
func detectUnknownKeys(file string, raw map[string]any) []string {
	known := knownKeys(reflect.TypeOf(Settings{}))

	var unknown []string
	for key := range raw {
		if key == "$schema" {
			continue
		}
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	warnings := make([]string, 0, len(unknown))
	for _, key := range unknown {
		warnings = append(warnings, fmt.Sprintf("%s: unknown setting %q (ignored)", file, key))
	}
	return warnings
}

// knownKeys returns the yaml field names of a struct type.
func knownKeys(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			fields[name] = true
		}
	}
	return fields
}
