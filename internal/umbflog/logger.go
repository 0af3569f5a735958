// Package umbflog provides the structured logger used across the codec,
// the library registry, and the CLI. It wraps log/slog behind a small
// interface so tests can inject a discard logger without touching global
// state.
package umbflog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger is the logging surface every UMBF package depends on.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
}

type slogLogger struct {
	logger *slog.Logger
}

// New wraps an existing slog.Handler.
func New(handler slog.Handler) Logger {
	return &slogLogger{logger: slog.New(handler)}
}

// Default returns a text-handler Logger writing to stderr at info level.
func Default() Logger {
	return New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Discard returns a Logger that drops every record; used by tests and by
// codec paths that accept an optional logger.
func Discard() Logger {
	return New(slog.NewTextHandler(io.Discard, nil))
}

// Pretty returns a colorized Logger suited to an interactive CLI.
func Pretty(w io.Writer, level slog.Level) Logger {
	return New(NewPrettyHandler(w, &slog.HandlerOptions{Level: level}))
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{logger: l.logger.WithGroup(name)}
}

// ParseLevel converts a config/flag string to a slog.Level, defaulting to
// info on anything unrecognized.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WarnBlockDropped logs the non-fatal, block-dropped-but-file-continues
// case described by the format's error handling design: a registered
// decoder failed, or returned nothing, for a given block signature.
func WarnBlockDropped(l Logger, signature uint32, err error) {
	if err != nil {
		l.Warn("block decode failed, dropping block", "signature", fmt.Sprintf("0x%08X", signature), "error", err)
		return
	}
	l.Warn("block decoder returned nothing, dropping block", "signature", fmt.Sprintf("0x%08X", signature))
}

// ErrorLoadFailed logs the single error-level line a failed File load must
// produce, identifying the path.
func ErrorLoadFailed(l Logger, path string, err error) {
	l.Error("failed to load UMBF file", "path", path, "error", err)
}
