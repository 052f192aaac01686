// Package logging configures the diagnostic logger.
//
// Diagnostics go to stderr through zerolog and are hidden unless debug
// logging is enabled with --debug, TESTGREP_DEBUG=1 or DEBUG=testgrep.
// User-facing output goes through internal/output instead.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugFromEnv reports whether debug logging is requested by the
// environment.
func DebugFromEnv(lookup func(string) (string, bool)) bool {
	if v, ok := lookup("TESTGREP_DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if v, ok := lookup("DEBUG"); ok {
		for _, name := range strings.Split(v, ",") {
			name = strings.TrimSpace(name)
			if name == "testgrep" || name == "*" {
				return true
			}
		}
	}
	return false
}

// Setup points the global logger at w. Nothing below warn level is written
// unless debug is set.
func Setup(w io.Writer, debug bool) {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Str("component", "testgrep").
		Logger()
}
