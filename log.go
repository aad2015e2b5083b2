package imt

import "log/slog"

// Logger receives the engine's structured log lines as message plus
// alternating key/value pairs. The engine logs from the single goroutine
// driving the tree, never concurrently with itself.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// NewNopLogger returns a Logger that discards everything. It is the default
// when Config.Logger is nil.
func NewNopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// NewSlogLogger adapts a *slog.Logger to the engine's Logger.
func NewSlogLogger(l *slog.Logger) Logger {
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, keyvals ...any) { s.l.Debug(msg, keyvals...) }
func (s slogLogger) Info(msg string, keyvals ...any)  { s.l.Info(msg, keyvals...) }
func (s slogLogger) Error(msg string, keyvals ...any) { s.l.Error(msg, keyvals...) }
