package config

import "github.com/AndreyAkinshin/testgrep/internal/corpus"

// Default setting values.
const (
	DefaultBurn  = 1
	DefaultSpecs = corpus.DefaultPattern
)

// SettingsFiles are looked up, in order, in the working directory when no
// settings file is given explicitly.
var SettingsFiles = []string{".testgrep.yaml", ".testgrep.yml", ".testgrep.toml"}

// Defaults returns settings that select every test once.
func Defaults() *Settings {
	return &Settings{
		Burn:  DefaultBurn,
		Specs: DefaultSpecs,
	}
}
