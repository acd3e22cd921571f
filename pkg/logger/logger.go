package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log is the global logger instance. Setup replaces it; the default
// keeps the package usable before Setup runs.
var Log = slog.Default()

// Setup initializes the global logger. Production gets JSON output for
// log aggregation; everything else gets human-readable text. LOG_LEVEL
// overrides the default info level.
func Setup(env string) {
	opts := &slog.HandlerOptions{Level: levelFromEnv()}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package-level helpers over the global logger.

func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
