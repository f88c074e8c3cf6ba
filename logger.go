package rowgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rowgo-specific context.
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
// It is the library default.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// WithDensity adds a non-zero density field to the logger.
func (l *Logger) WithDensity(density float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("density", density),
	}
}

// LogSelect logs a representation decision.
func (l *Logger) LogSelect(ctx context.Context, length, nonZeros int, sparse bool) {
	kind := "dense"
	if sparse {
		kind = "sparse"
	}

	density := 0.0
	if length > 0 {
		density = float64(nonZeros) / float64(length)
	}

	l.DebugContext(ctx, "representation selected",
		"kind", kind,
		"length", length,
		"non_zeros", nonZeros,
		"density", density,
	)
}

// LogBatchBuild logs a batch construction.
func (l *Logger) LogBatchBuild(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch build completed",
			"count", count,
		)
	}
}
