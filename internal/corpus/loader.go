package corpus

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
	"github.com/AndreyAkinshin/testgrep/internal/schema"
)

// DefaultPattern matches manifest files anywhere below the root.
const DefaultPattern = "**/*.testgrep.{yaml,yml,json,toml}"

// Loader reads manifests from a filesystem. Paths are slash-separated and
// relative to the root of that filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// NewDirLoader creates a Loader rooted at dir on the OS filesystem.
func NewDirLoader(dir string) (*Loader, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Environmentf("cannot resolve directory %s: %v", dir, err)
	}
	return NewLoader(afero.NewBasePathFs(afero.NewOsFs(), abs)), nil
}

// Find resolves a comma-separated list of manifest paths and glob patterns
// ("**" supported) to a sorted list of existing manifest paths.
func (l *Loader) Find(patterns string) ([]string, error) {
	seen := make(map[string]struct{})
	var matches []string

	for _, pattern := range splitPatterns(patterns) {
		pattern = normalizePath(pattern)
		if pattern == "" {
			continue
		}

		var found []string
		if strings.ContainsAny(pattern, "*?[{") {
			var err error
			found, err = doublestar.Glob(afero.NewIOFS(l.fs), pattern)
			if err != nil {
				return nil, errors.Configf("invalid manifest pattern %q: %v", pattern, err)
			}
			log.Debug().Str("pattern", pattern).Int("count", len(found)).Msg("resolved manifest pattern")
		} else {
			ok, err := afero.Exists(l.fs, pattern)
			if err != nil {
				return nil, errors.Environmentf("cannot access %s: %v", pattern, err)
			}
			if !ok {
				return nil, errors.NotFound("manifest", pattern)
			}
			found = []string{pattern}
		}

		for _, p := range found {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			matches = append(matches, p)
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// splitPatterns splits a comma-separated pattern list. Commas inside
// braces belong to the glob alternation and do not split.
func splitPatterns(patterns string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(patterns); i++ {
		switch patterns[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, patterns[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, patterns[start:])
}

// normalizePath converts a user-supplied path into the unrooted,
// slash-separated form io/fs expects.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = path.Clean(filepath.ToSlash(p))
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// LoadAll finds and loads every manifest matching patterns.
func (l *Loader) LoadAll(patterns string) ([]*Manifest, error) {
	paths, err := l.Find(patterns)
	if err != nil {
		return nil, err
	}

	manifests := make([]*Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

// Load reads, validates and decodes a single manifest. The format is chosen
// by extension: .yaml/.yml, .json or .toml.
func (l *Loader) Load(p string) (*Manifest, error) {
	data, err := afero.ReadFile(l.fs, p)
	if err != nil {
		return nil, errors.Environmentf("failed to read manifest %s: %v", p, err)
	}

	doc, err := decodeDocument(p, data)
	if err != nil {
		return nil, errors.Manifest(p, "invalid manifest", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	if err := schema.ValidateManifest(doc); err != nil {
		return nil, errors.Manifest(p, "invalid manifest", err)
	}

	m, err := decodeManifest(doc)
	if err != nil {
		return nil, errors.Manifest(p, "invalid manifest", err)
	}
	m.Path = p
	if m.Name == "" {
		m.Name = manifestStem(p)
	}

	log.Debug().Str("manifest", p).Int("tests", len(m.Entries())).Msg("loaded manifest")
	return m, nil
}

// decodeDocument decodes raw manifest bytes into generic values.
func decodeDocument(p string, data []byte) (any, error) {
	var doc any
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case ".toml":
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
		doc = table
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", path.Ext(p))
	}
	return doc, nil
}

// decodeManifest converts a validated generic document into a Manifest.
// Weak typing lets a single tag be written as a plain string.
func decodeManifest(doc any) (*Manifest, error) {
	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}

	if root, ok := doc.(map[string]any); ok {
		delete(root, "$schema")
	}
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}
	return &m, nil
}

func manifestStem(p string) string {
	base := path.Base(p)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
