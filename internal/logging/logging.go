// Package logging builds the zerolog logger shared by the application.
// Output is diagnostic only; failures are never surfaced in the UI beyond a
// status indicator.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-writer logger at the given level, writing to w.
// Unparsable levels fall back to info. A nil writer logs to stderr.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
