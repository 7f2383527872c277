package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init; packages that log during tests get the
// default handler instead of a nil pointer.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	level := slog.LevelInfo
	if os.Getenv("LOG_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
