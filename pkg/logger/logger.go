package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// L returns the configured logger, falling back to slog's default so that
// packages can log before Init runs (tests, scripts).
func L() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}
