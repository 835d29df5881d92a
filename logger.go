package ggtext

import (
	"log/slog"

	"github.com/gogpu/ggtext/internal/logging"
)

// SetLogger configures the logger for ggtext and all its sub-packages
// (font, shape, linebreak, hyphen). By default, ggtext produces no log
// output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use. Pass nil to disable logging
// (restore default silent behavior).
//
// Log levels used by ggtext:
//   - [slog.LevelDebug]: internal diagnostics (hyphenation pattern fallback)
//
// No other level is logged at present.
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	ggtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by ggtext.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
