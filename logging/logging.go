// Package logging provides the structured logger shared by resfs components.
//
// A Logger wraps log/slog. Components accept a *Logger through their options
// and default to NewNop, so the core stays silent unless the host opts in.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jmgilman/go/resfs/errors"
)

// Level is the minimum severity a Logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config holds configuration for New.
type Config struct {
	// Level sets the minimum level emitted.
	Level Level
	// AddSource includes file and line in each record.
	AddSource bool
	// JSON selects the JSON handler instead of the text handler.
	JSON bool
	// Output receives records; os.Stderr when nil.
	Output io.Writer
}

// DefaultConfig returns info-level text output on stderr.
func DefaultConfig() Config {
	return Config{Level: LevelInfo}
}

// Logger emits structured records. The zero value and a nil *Logger both
// discard everything.
type Logger struct {
	logger *slog.Logger
}

// New creates a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level.slog(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// FromSlog wraps an existing slog.Logger.
func FromSlog(l *slog.Logger) *Logger {
	return &Logger{logger: l}
}

// NewNop returns a Logger that discards all records.
func NewNop() *Logger {
	return &Logger{}
}

func (l *Logger) enabled() bool {
	return l != nil && l.logger != nil
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	if l.enabled() {
		l.logger.DebugContext(ctx, msg, args...)
	}
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l.enabled() {
		l.logger.InfoContext(ctx, msg, args...)
	}
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l.enabled() {
		l.logger.WarnContext(ctx, msg, args...)
	}
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l.enabled() {
		l.logger.ErrorContext(ctx, msg, args...)
	}
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	if !l.enabled() {
		return l
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithOperation tags records with the operation name.
func (l *Logger) WithOperation(op string) *Logger {
	return l.With("operation", op)
}

// WithPath tags records with a resolved path.
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// WithCategory tags records with a resource category.
func (l *Logger) WithCategory(category string) *Logger {
	return l.With("category", category)
}

// ParseLevel parses "debug", "info", "warn"/"warning" or "error".
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.Newf(errors.CodeInvalidInput, "invalid log level: %s", level)
	}
}
