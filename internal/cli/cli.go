// Package cli provides the testgrep command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/testgrep/internal/errors"
	"github.com/AndreyAkinshin/testgrep/internal/logging"
	"github.com/AndreyAkinshin/testgrep/internal/output"
	"github.com/AndreyAkinshin/testgrep/internal/project"
)

// Version is set at build time.
var Version = "dev"

// GlobalOptions holds the flags shared by every command.
type GlobalOptions struct {
	Quiet  bool
	Debug  bool
	Config string
}

// app carries what commands need from the outside world, so tests can run
// the CLI against buffers and an in-memory filesystem.
type app struct {
	out    *output.Writer
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// files resolves paths given as arguments.
	files afero.Fs
	// openDir returns the filesystem rooted at a working directory.
	openDir func(dir string) (afero.Fs, error)
	// findRoot locates the nearest directory holding a settings file.
	findRoot func() (string, error)

	lookupEnv func(string) (string, bool)
	opts      GlobalOptions
}

func defaultApp() *app {
	return &app{
		out:       output.New(),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		files:     afero.NewOsFs(),
		lookupEnv: os.LookupEnv,
		openDir:   osDir,
		findRoot:  project.FindRoot,
	}
}

func osDir(dir string) (afero.Fs, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Environmentf("cannot resolve directory %s: %v", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Environmentf("cannot access directory %s: %v", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Environmentf("not a directory: %s", dir)
	}
	return afero.NewBasePathFs(afero.NewOsFs(), abs), nil
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return defaultApp().run(args)
}

func (a *app) run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.Execute(); err != nil {
		a.out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "testgrep",
		Short: "Select tests by title and tag expressions",
		Long: `testgrep selects tests from declarative manifests by title substrings and
tag expressions.

Title expressions are ";"-separated substrings, "-" negates one:
  testgrep select --grep "hello w; -slow"

Tag expressions are OR groups separated by spaces or commas, AND terms
joined with "+", "-" negates a term and "--" excludes it everywhere:
  testgrep select --tags "@smoke+@fast @critical --@flaky"`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.out.SetQuiet(a.opts.Quiet)
			logging.Setup(a.stderr, a.opts.Debug || logging.DebugFromEnv(a.lookupEnv))
		},
	}
	root.SetVersionTemplate("testgrep {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Configf("%s: %v", cmd.CommandPath(), err)
	})

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.opts.Quiet, "quiet", "q", false, "Print results and errors only")
	flags.BoolVar(&a.opts.Debug, "debug", false, "Print diagnostic logs to stderr")
	flags.StringVar(&a.opts.Config, "config", "", "Settings file (default .testgrep.yaml, .testgrep.yml or .testgrep.toml)")

	root.AddCommand(
		a.selectCmd(),
		a.parseCmd(),
		a.tagsCmd(),
		a.failedCmd(),
		a.versionCmd(),
		a.completionCmd(root),
	)
	return root
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the testgrep version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.out.Println("testgrep %s", Version)
		},
	}
}

// usageError marks a bad invocation so it exits with the configuration
// error code.
func usageError(format string, args ...any) error {
	return errors.Config(fmt.Sprintf(format, args...))
}
