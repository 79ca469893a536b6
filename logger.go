package modelstorage

import (
	"errors"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with modelstorage-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogRejected logs a mutation that was ignored because its input was invalid.
func (l *Logger) LogRejected(op string, err error) {
	var ce *ErrCoordinate
	if errors.As(err, &ce) {
		l.Warn("operation ignored",
			"op", op,
			"section", ce.Coordinate.Section,
			"item", ce.Coordinate.Item,
			"count", ce.Count,
			"error", err,
		)
		return
	}
	l.Warn("operation ignored",
		"op", op,
		"error", err,
	)
}

// LogSuppressed logs how many diagnostics the rate limiter dropped.
func (l *Logger) LogSuppressed(dropped int) {
	l.Warn("diagnostics suppressed",
		"dropped", dropped,
	)
}
