// Package logs builds the structured loggers used by the command line tools.
package logs

import (
	"io"
	"log/slog"
	"slices"

	slogmulti "github.com/samber/slog-multi"
)

// Level is the threshold for the terminal handler.
var Level = new(slog.LevelVar)

// Verbose lowers the terminal threshold to debug.
func Verbose(verbose bool) {
	if verbose {
		Level.Set(slog.LevelDebug)
	} else {
		Level.Set(slog.LevelInfo)
	}
}

// New returns a logger writing text records at Level to terminal. When
// trace is non-nil every record, debug included, is also written to it
// as JSON. Records are also passed to any extra handlers.
func New(terminal io.Writer, trace io.Writer, extra ...slog.Handler) *slog.Logger {
	handlers := slices.Clone(extra)

	if terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(
			terminal,
			&slog.HandlerOptions{
				Level: Level,
			},
		))
	}

	if trace != nil {
		handlers = append(handlers, slog.NewJSONHandler(
			trace,
			&slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}
