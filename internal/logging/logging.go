// Package logging provides the structured logger used by the CLI.
//
// Logs are diagnostic only and go to stderr; the table stream on stdout
// never carries log lines.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Logger is a leveled key/value logger.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// SlogLogger implements Logger on top of log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

// Compile-time assertion that SlogLogger implements Logger.
var _ Logger = (*SlogLogger)(nil)

// NewSlog wraps an existing slog.Logger.
//
// Example:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	logger := NewSlog(slog.New(handler))
//	logger.Info("solver started", "rows", 3)
func NewSlog(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// NewText builds a text-handler logger writing to w at the given level.
func NewText(w io.Writer, level slog.Level) *SlogLogger {
	return NewSlog(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// With returns a logger that always attaches the given key/value pairs.
func (l *SlogLogger) With(keysAndValues ...any) *SlogLogger {
	return &SlogLogger{logger: l.logger.With(keysAndValues...)}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *SlogLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs an info-level message with optional key-value pairs.
func (l *SlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *SlogLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, keysAndValues...)
}

// Error logs an error-level message with optional key-value pairs.
func (l *SlogLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to a slog.Level. ok is false for anything else.
func ParseLevel(s string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// NopLogger discards all messages. Useful in tests.
type NopLogger struct{}

var _ Logger = NopLogger{}

// NewNop returns a logger that discards everything.
func NewNop() NopLogger { return NopLogger{} }

// Debug discards the message.
func (NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (NopLogger) Error(string, ...any) {}
