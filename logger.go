package tinyvg

import (
	"log/slog"

	"github.com/MasterQ32/TinyVG/internal/logging"
)

// SetLogger configures the logger used by Render, its internal path
// flattener and the format decoder. By default tinyvg produces no
// log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior).
//
// Log levels used by this package:
//   - [slog.LevelDebug]: per-command dispatch tracing (which DrawCommand
//     variant was dispatched, computed scale factors) and degenerate
//     zero-length arc chords skipped.
//   - [slog.LevelWarn]: non-fatal numeric corrections (an oversized arc
//     radius bumped up).
//
// Render never logs at [slog.LevelError]; errors are returned as values,
// not logged.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
