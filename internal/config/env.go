package config

import (
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
)

// Environment variable names. Each setting can be given under its
// TESTGREP_ name or one of the shorter aliases; the first one set wins.
var (
	EnvGrep         = []string{"TESTGREP_GREP", "GREP"}
	EnvTags         = []string{"TESTGREP_TAGS", "GREP_TAGS"}
	EnvBurn         = []string{"TESTGREP_BURN", "GREP_BURN", "BURN"}
	EnvUntagged     = []string{"TESTGREP_UNTAGGED", "GREP_UNTAGGED"}
	EnvOmitFiltered = []string{"TESTGREP_OMIT_FILTERED", "GREP_OMIT_FILTERED"}
	EnvPrefixAt     = []string{"TESTGREP_PREFIX_AT", "GREP_PREFIX_AT"}
	EnvFilterSpecs  = []string{"TESTGREP_FILTER_SPECS", "GREP_FILTER_SPECS"}
	EnvSpecs        = []string{"TESTGREP_SPECS"}
)

// ApplyEnv overrides s with the settings found in the environment.
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) error {
	if v, _, ok := firstSet(lookup, EnvGrep); ok {
		s.Grep = strings.TrimSpace(v)
	}
	if v, _, ok := firstSet(lookup, EnvTags); ok {
		s.Tags = v
	}
	if v, _, ok := firstSet(lookup, EnvSpecs); ok {
		s.Specs = v
	}

	if v, name, ok := firstSet(lookup, EnvBurn); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Configf("invalid burn value %q in %s: must be a positive integer", v, name)
		}
		s.Burn = n
	}

	flags := []struct {
		names []string
		dst   *bool
	}{
		{EnvUntagged, &s.Untagged},
		{EnvOmitFiltered, &s.OmitFiltered},
		{EnvPrefixAt, &s.PrefixAt},
		{EnvFilterSpecs, &s.FilterSpecs},
	}
	for _, f := range flags {
		v, name, ok := firstSet(lookup, f.names)
		if !ok {
			continue
		}
		b, err := parseBool(v)
		if err != nil {
			return errors.Configf("invalid value %q in %s: must be a boolean", v, name)
		}
		*f.dst = b
	}

	return nil
}

// firstSet returns the value of the first non-empty variable in names.
func firstSet(lookup func(string) (string, bool), names []string) (value, name string, ok bool) {
	for _, n := range names {
		if v, found := lookup(n); found && v != "" {
			return v, n, true
		}
	}
	return "", "", false
}

// parseBool accepts the strconv forms plus yes/no and on/off.
func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}
