package cli

import (
	"bytes"
	"encoding/json"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
	"github.com/AndreyAkinshin/testgrep/internal/output"
	"github.com/AndreyAkinshin/testgrep/internal/project"
)

type testApp struct {
	*app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestApp returns an app reading files from memory. Directories passed
// with --dir are resolved below the in-memory root.
func newTestApp(t *testing.T, files map[string]string, env map[string]string) *testApp {
	t.Helper()

	mem := afero.NewMemMapFs()
	for name, content := range files {
		full := "/" + name
		require.NoError(t, mem.MkdirAll(path.Dir(full), 0o755))
		require.NoError(t, afero.WriteFile(mem, full, []byte(content), 0o644))
	}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	a := &app{
		out:    output.NewWithWriters(stdout, stderr, false),
		stdin:  strings.NewReader(""),
		stdout: stdout,
		stderr: stderr,
		files:  afero.NewBasePathFs(mem, "/"),
		openDir: func(dir string) (afero.Fs, error) {
			return afero.NewBasePathFs(mem, path.Join("/", dir)), nil
		},
		findRoot: func() (string, error) {
			return "", project.ErrNoProjectRoot
		},
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
	return &testApp{app: a, stdout: stdout, stderr: stderr}
}

const checkoutManifest = `
name: checkout
tests:
  - name: loads page
groups:
  - name: cart
    tags: "@cart"
    tests:
      - name: adds items
        tags: ["@smoke"]
      - name: removes items
        pending: true
      - name: charges card
        required_tags: "@payments"
`

const searchManifest = `{"tests": [{"name": "finds products", "tags": ["@smoke", "@search"]}]}`

func corpusFiles() map[string]string {
	return map[string]string{
		"specs/checkout.testgrep.yaml": checkoutManifest,
		"specs/search.testgrep.json":   searchManifest,
	}
}

func TestRun_Version(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}} {
		ta := newTestApp(t, nil, nil)
		code := ta.run(args)

		assert.Equal(t, 0, code)
		assert.Equal(t, "testgrep "+Version+"\n", ta.stdout.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"select", "--bogus"}},
		{"bad burn flag", []string{"select", "--burn", "lots"}},
		{"unexpected argument", []string{"select", "extra"}},
		{"bad format", []string{"select", "--format", "xml"}},
		{"burn out of range", []string{"select", "--burn", "0"}},
		{"completion without shell", []string{"completion"}},
		{"completion for unknown shell", []string{"completion", "tcsh"}},
		{"failed with bad format", []string{"failed", "--format", "junit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, nil, nil)
			code := ta.run(tt.args)

			assert.Equal(t, errors.ExitConfigError, code)
			assert.Contains(t, ta.stderr.String(), "testgrep: ")
		})
	}
}

func TestRun_Completion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			ta := newTestApp(t, nil, nil)
			code := ta.run([]string{"completion", shell})

			assert.Equal(t, 0, code)
			assert.Contains(t, ta.stdout.String(), "testgrep")
		})
	}
}

func TestRun_Parse(t *testing.T) {
	ta := newTestApp(t, nil, nil)
	code := ta.run([]string{"parse", "--grep", " hello ; -slow", "--tags", "smoke+fast,-slow --flaky", "--prefix-at"})
	require.Equal(t, 0, code, ta.stderr.String())

	var got parsedQuery
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &got))

	assert.Equal(t, "hello;-slow", got.Canonical.Grep)
	assert.Equal(t, "@smoke+@fast+-@flaky -@slow+-@flaky", got.Canonical.Tags)
	assert.Equal(t, []string{"-flaky", "fast", "slow", "smoke"}, got.MentionedTags)
	require.Len(t, got.Query.Tags, 2)
}

func TestRun_ParseEmpty(t *testing.T) {
	ta := newTestApp(t, nil, nil)
	require.Equal(t, 0, ta.run([]string{"parse"}))

	assert.JSONEq(t, `{
		"query": {"title": null, "tags": null},
		"canonical": {"grep": "", "tags": ""},
		"mentioned_tags": []
	}`, ta.stdout.String())
}
