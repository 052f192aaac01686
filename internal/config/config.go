// Package config loads the selection settings of a run from a settings file
// and the environment.
package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
	"github.com/AndreyAkinshin/testgrep/internal/schema"
)

// Settings controls which tests are selected and how the result is acted on.
type Settings struct {
	// Grep is the title expression, e.g. "hello w; -slow".
	Grep string `yaml:"grep" toml:"grep"`
	// Tags is the tag expression, e.g. "@smoke+@fast -@flaky".
	Tags string `yaml:"tags" toml:"tags"`
	// Burn repeats every selected test this many times.
	Burn int `yaml:"burn" toml:"burn" validate:"min=1,max=1000"`
	// Untagged selects only tests without effective tags.
	Untagged bool `yaml:"untagged" toml:"untagged"`
	// OmitFiltered drops unselected tests instead of marking them skipped.
	OmitFiltered bool `yaml:"omit_filtered" toml:"omit_filtered"`
	// PrefixAt prepends "@" to tag names in Tags that lack it.
	PrefixAt bool `yaml:"prefix_at" toml:"prefix_at"`
	// FilterSpecs drops whole manifests without selected tests.
	FilterSpecs bool `yaml:"filter_specs" toml:"filter_specs"`
	// Specs is a comma-separated list of manifest paths or glob patterns.
	Specs string `yaml:"specs" toml:"specs"`
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// Fs is the filesystem settings files are read from, rooted at the
	// working directory.
	Fs afero.Fs
	// File is an explicit settings file. When empty the default file names
	// are tried and a missing file is not an error.
	File string
	// LookupEnv reads environment variables. Nil disables the environment.
	LookupEnv func(string) (string, bool)
}

// Load builds settings from defaults, the settings file and the
// environment, in increasing order of precedence. It returns warnings for
// ignored settings file keys. The result is not validated, so callers can
// still apply command-line overrides before calling Validate.
func Load(opts LoadOptions) (*Settings, []string, error) {
	s := Defaults()
	var warnings []string

	file := opts.File
	if file == "" && opts.Fs != nil {
		file = findSettingsFile(opts.Fs)
	}
	if file != "" {
		if opts.Fs == nil {
			return nil, nil, errors.Configf("cannot read settings file %s: no filesystem", file)
		}
		fileWarnings, err := loadFileInto(opts.Fs, file, s)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, fileWarnings...)
	}

	if opts.LookupEnv != nil {
		if err := ApplyEnv(s, opts.LookupEnv); err != nil {
			return nil, warnings, err
		}
	}

	log.Debug().Stringer("settings", s).Str("file", file).Msg("loaded settings")
	return s, warnings, nil
}

func findSettingsFile(fsys afero.Fs) string {
	for _, name := range SettingsFiles {
		if ok, err := afero.Exists(fsys, name); err == nil && ok {
			return name
		}
	}
	return ""
}

// LoadFile reads a YAML or TOML settings file on top of the defaults,
// validates it against the settings schema and returns warnings for unknown
// keys.
func LoadFile(fsys afero.Fs, file string) (*Settings, []string, error) {
	s := Defaults()
	warnings, err := loadFileInto(fsys, file, s)
	if err != nil {
		return nil, nil, err
	}
	return s, warnings, nil
}

// loadFileInto overwrites the fields of s that the settings file sets.
func loadFileInto(fsys afero.Fs, file string, s *Settings) ([]string, error) {
	data, err := afero.ReadFile(fsys, file)
	if err != nil {
		return nil, errors.Environmentf("failed to read settings file %s: %v", file, err)
	}

	unmarshal, err := unmarshalerFor(file)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, errors.Configf("failed to parse settings file %s: %v", file, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := schema.ValidateSettings(raw); err != nil {
		return nil, errors.Configf("%s: %v", file, err)
	}

	if err := unmarshal(data, s); err != nil {
		return nil, errors.Configf("failed to parse settings file %s: %v", file, err)
	}

	return detectUnknownKeys(file, raw), nil
}

func unmarshalerFor(file string) (func([]byte, any) error, error) {
	switch strings.ToLower(path.Ext(file)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".toml":
		return toml.Unmarshal, nil
	default:
		return nil, errors.Configf("unsupported settings file format %q (want .yaml, .yml or .toml)", path.Ext(file))
	}
}

// String renders the settings for debug output.
func (s *Settings) String() string {
	return fmt.Sprintf("grep=%q tags=%q burn=%d untagged=%t omit_filtered=%t prefix_at=%t filter_specs=%t specs=%q",
		s.Grep, s.Tags, s.Burn, s.Untagged, s.OmitFiltered, s.PrefixAt, s.FilterSpecs, s.Specs)
}
