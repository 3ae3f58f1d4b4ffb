package statevis // import "github.com/statevis/statevis"

import (
	"log/slog"
)

// Logger is the interface used by the module to log information
type Logger interface {
	Debug(string, ...interface{})
	Error(string, ...interface{})
	Info(string, ...interface{})
}

type nilLogger struct{}

func (l *nilLogger) Debug(m string, args ...interface{}) {}
func (l *nilLogger) Error(m string, args ...interface{}) {}
func (l *nilLogger) Info(m string, args ...interface{})  {}

// NewSlogLogger adapts a structured slog logger to the Logger interface.
// Variadic arguments are passed through as slog key/value attributes.
func NewSlogLogger(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(m string, args ...interface{}) { s.l.Debug(m, args...) }
func (s *slogLogger) Error(m string, args ...interface{}) { s.l.Error(m, args...) }
func (s *slogLogger) Info(m string, args ...interface{})  { s.l.Info(m, args...) }
