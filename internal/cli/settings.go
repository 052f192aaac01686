package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/testgrep/internal/config"
)

// selectionFlags are the command-line overrides of config.Settings. A flag
// only overrides the settings file and the environment when it is given.
type selectionFlags struct {
	grep         string
	tags         string
	burn         int
	untagged     bool
	omitFiltered bool
	prefixAt     bool
	filterSpecs  bool
	specs        string
	dir          string
}

func addSelectionFlags(cmd *cobra.Command, f *selectionFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.grep, "grep", "", `Title expression, e.g. "hello w; -slow"`)
	flags.StringVar(&f.tags, "tags", "", `Tag expression, e.g. "@smoke+@fast --@flaky"`)
	flags.IntVar(&f.burn, "burn", config.DefaultBurn, "Repeat every selected test N times")
	flags.BoolVar(&f.untagged, "untagged", false, "Select only tests without tags")
	flags.BoolVar(&f.omitFiltered, "omit-filtered", false, "Leave unselected tests out instead of skipping them")
	flags.BoolVar(&f.prefixAt, "prefix-at", false, `Prefix tag names with "@" when missing`)
	flags.BoolVar(&f.filterSpecs, "filter-specs", false, "Drop manifests without selected tests")
	addCorpusFlags(cmd, f)
}

func addCorpusFlags(cmd *cobra.Command, f *selectionFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.specs, "specs", config.DefaultSpecs, "Comma-separated manifest paths or glob patterns")
	flags.StringVarP(&f.dir, "dir", "C", ".", "Directory manifests and the settings file are read from")
}

// apply copies the flags that were given on the command line into s.
func (f *selectionFlags) apply(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("grep") {
		s.Grep = f.grep
	}
	if flags.Changed("tags") {
		s.Tags = f.tags
	}
	if flags.Changed("burn") {
		s.Burn = f.burn
	}
	if flags.Changed("untagged") {
		s.Untagged = f.untagged
	}
	if flags.Changed("omit-filtered") {
		s.OmitFiltered = f.omitFiltered
	}
	if flags.Changed("prefix-at") {
		s.PrefixAt = f.prefixAt
	}
	if flags.Changed("filter-specs") {
		s.FilterSpecs = f.filterSpecs
	}
	if flags.Changed("specs") {
		s.Specs = f.specs
	}
}

// loadSettings resolves the settings of a command: defaults, then the
// settings file, then the environment, then flags. It returns the
// filesystem of the working directory alongside.
//
// Without --dir and --config the working directory is the nearest parent
// holding a settings file, falling back to the current directory.
func (a *app) loadSettings(cmd *cobra.Command, f *selectionFlags) (*config.Settings, afero.Fs, error) {
	dir := f.dir
	if !cmd.Flags().Changed("dir") && a.opts.Config == "" && a.findRoot != nil {
		if root, err := a.findRoot(); err == nil {
			log.Debug().Str("root", root).Msg("found settings root")
			dir = root
		}
	}

	fsys, err := a.openDir(dir)
	if err != nil {
		return nil, nil, err
	}

	s, warnings, err := config.Load(config.LoadOptions{
		Fs:        fsys,
		File:      a.opts.Config,
		LookupEnv: a.lookupEnv,
	})
	for _, w := range warnings {
		a.out.Warning("%s", w)
	}
	if err != nil {
		return nil, nil, err
	}

	f.apply(cmd, s)
	if err := config.Validate(s); err != nil {
		return nil, nil, err
	}
	return s, fsys, nil
}
