// Package project locates the directory a testgrep run is rooted at.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/AndreyAkinshin/testgrep/internal/config"
)

// ErrNoProjectRoot is returned when no settings file is found.
var ErrNoProjectRoot = errors.New("no testgrep settings file found in the directory or any parent up to the root")

// FindRoot walks up from the current working directory until it finds a
// directory holding a settings file.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(afero.NewOsFs(), cwd)
}

// FindRootFrom walks up from startDir until it finds a directory holding
// one of config.SettingsFiles.
func FindRootFrom(fsys afero.Fs, startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range config.SettingsFiles {
			if ok, err := afero.Exists(fsys, filepath.Join(dir, name)); err == nil && ok {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProjectRoot
		}
		dir = parent
	}
}
