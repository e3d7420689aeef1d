package scenerender

import (
	"log/slog"

	"github.com/gogpu/scenerender/internal/logx"
)

// SetLogger configures the logger for scenerender and all its sub-packages.
// By default, scenerender produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by scenerender:
//   - [slog.LevelDebug]: prepared bounds, output sizes, batch progress
//   - [slog.LevelWarn]: skipped elements, undecodable assets, font
//     substitution, failed batch items
//
// Example:
//
//	scenerender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// A Renderer created with WithLogger logs its own warnings there instead.
func SetLogger(l *slog.Logger) {
	logx.SetLogger(l)
}

// Logger returns the current package-wide logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logx.Logger()
}
