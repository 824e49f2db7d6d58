// Package log builds the zerolog logger used by the inrange command.
package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vipcxj/inrange/internal/config"
)

// New returns a logger writing to w. Unknown or empty levels fall back to
// warn so that command output stays clean by default.
func New(w io.Writer, format config.LogFormat, level string) zerolog.Logger {
	out := w
	if format != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
