// Package schema provides JSON schema validation for testgrep manifests and
// settings files.
package schema

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/AndreyAkinshin/testgrep/schema"
)

var (
	manifestSchema *jsonschema.Schema
	settingsSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{"manifest.schema.json", "settings.schema.json"} {
			data, err := schemafs.FS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		manifestSchema, err = compiler.Compile("manifest.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile manifest schema: %w", err)
			return
		}

		settingsSchema, err = compiler.Compile("settings.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile settings schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateManifest validates a decoded manifest document (as produced by a
// JSON, YAML or TOML decoder into any) against the manifest schema.
func ValidateManifest(doc any) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	if err := manifestSchema.Validate(doc); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	return nil
}

// ValidateSettings validates a decoded settings document against the
// settings schema.
func ValidateSettings(doc any) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	if err := settingsSchema.Validate(doc); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	return nil
}
