package kvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kvec-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil w writes to stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w writes to stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithRunID tags every record with the id of the current run.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithK adds a k field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogClustering logs the end of a k-means run.
func (l *Logger) LogClustering(ctx context.Context, k, iterations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering converged",
			"k", k,
			"iterations", iterations,
		)
	}
}

// LogClassification logs the end of a k-NN evaluation.
func (l *Logger) LogClassification(ctx context.Context, k, queries, correct, labeled int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "classification failed",
			"k", k,
			"error", err,
		)
		return
	}
	if labeled > 0 && correct < labeled {
		l.WarnContext(ctx, "classification completed with misses",
			"k", k,
			"queries", queries,
			"correct", correct,
			"labeled", labeled,
		)
		return
	}
	l.InfoContext(ctx, "classification completed",
		"k", k,
		"queries", queries,
		"correct", correct,
		"labeled", labeled,
	)
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, name string, items int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "dataset loaded",
			"name", name,
			"items", items,
		)
	}
}
