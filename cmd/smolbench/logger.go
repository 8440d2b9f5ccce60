package main

import (
	"context"
	"io"
	"log/slog"
)

// Logger wraps slog.Logger with smolbench-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler writing to w at Info level.
func NewLogger(w io.Writer, handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(w, slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(w, slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(io.Discard, slog.DiscardHandler)
}

// WithCase adds the benchmark case name to the logger.
func (l *Logger) WithCase(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("case", name),
	}
}

// LogCase logs the outcome of a single benchmark case.
func (l *Logger) LogCase(ctx context.Context, r Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "case failed",
			"case", r.Name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "case completed",
		"case", r.Name,
		"iterations", r.Iterations,
		"ns_per_op", r.NsPerOp,
		"allocs_per_op", r.AllocsPerOp,
		"heap_buffers", r.HeapBuffers,
	)
}

// LogRun logs the end of a benchmark run.
func (l *Logger) LogRun(ctx context.Context, cases, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "run completed with failures",
			"total", cases,
			"failed", failed,
		)
		return
	}
	l.InfoContext(ctx, "run completed",
		"cases", cases,
	)
}
