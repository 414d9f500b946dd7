package gaussgen

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/gaussgen/manifest"
)

// Logger wraps slog.Logger with generator-specific field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithShape adds the dataset shape (n, k) to every record.
func (l *Logger) WithShape(n, k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n, "k", k),
	}
}

// LogSample logs the in-memory generation step.
func (l *Logger) LogSample(ctx context.Context, n, k int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sampling failed",
			"n", n,
			"k", k,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "sampling completed",
		"n", n,
		"k", k,
		"duration", d,
	)
}

// LogWrite logs one persisted artifact.
func (l *Logger) LogWrite(ctx context.Context, a manifest.Artifact, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"artifact", a.Name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "artifact saved",
		"artifact", a.Name,
		"lines", a.Lines,
	)
	l.DebugContext(ctx, "artifact details",
		"artifact", a.Name,
		"size", a.Size,
		"crc32c", a.CRC32C,
		"duration", d,
	)
}
