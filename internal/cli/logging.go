package cli

import (
	"io"
	"log/slog"
)

// NewLogger builds the CLI logger. Warnings and errors are shown by default;
// each -v lowers the threshold one step and quiet keeps only errors.
func NewLogger(w io.Writer, verbose int, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose == 1:
		level = slog.LevelInfo
	case verbose > 1:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
