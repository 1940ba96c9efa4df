package logger

import (
	"context"
	"log/slog"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const LoggerKey ContextKey = "logger"

// FromContext retrieves the logger from the context.
// If no logger is found, it returns the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// WithTask adds the task id to the logger in the context so every
// log line of a deployment carries it.
func WithTask(ctx context.Context, task string) context.Context {
	log := FromContext(ctx).With("task", task)
	return WithLogger(ctx, log)
}
