// Package zklog wraps zerolog the way gnark's own backend loggers do:
// a package-level logger, a With()-chain for structured fields, and no
// logging on the hot path of a single field or curve operation (only on
// cache misses and dispatch decisions).
package zklog

import (
	"os"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().
	Timestamp().
	Logger().
	Level(zerolog.WarnLevel)

// Logger returns the package-level logger. Callers chain .With()....Logger()
// the same way gnark's logger.Logger().With().Str(...).Logger() does.
func Logger() zerolog.Logger { return base }

// SetLevel adjusts the global verbosity, e.g. zerolog.DebugLevel to observe
// NTT domain-cache population and MSM backend fallbacks during development.
func SetLevel(lvl zerolog.Level) { base = base.Level(lvl) }
