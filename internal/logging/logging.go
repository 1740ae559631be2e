// ABOUTME: Minimal structured-logging interface over log/slog.
// ABOUTME: Used by the HTTP surface; the CLI speaks through internal/ui instead.

package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g. log.Info(ctx, "request", "path", r.URL.Path).
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New returns a text-format Logger writing to w.
func New(w io.Writer) Logger {
	return &slogLogger{l: slog.New(slog.NewTextHandler(w, nil))}
}

// Wrap adapts an existing *slog.Logger.
func Wrap(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}
