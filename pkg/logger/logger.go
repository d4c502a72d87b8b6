package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init so packages can log from tests.
var Log = slog.Default()

// Init configures the process logger. Debug mode writes human-readable text
// at debug level; otherwise JSON at info level.
func Init(debug bool) {
	if debug {
		Log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	slog.SetDefault(Log)
}
