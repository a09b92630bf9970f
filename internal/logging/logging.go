// Package logging builds the zerolog loggers used by the command-line tools.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the named level. Unknown level names
// fall back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Console returns a human-readable logger on stderr, leaving stdout free
// for program output.
func Console(level string) zerolog.Logger {
	return New(level, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}
