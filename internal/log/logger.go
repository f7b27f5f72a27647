// Package log wraps logrus behind a small package-level API so the rest of
// the application logs through one place.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newLogrus(os.Stdout)

// Logger is a leveled logger backed by logrus
type Logger struct {
	l *logrus.Logger
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to w
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// NewLogger creates a new Logger, primarily for tests and subsystems that
// need isolated output
func NewLogger(opts ...Option) *Logger {
	lg := &Logger{l: newLogrus(os.Stdout)}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

func newLogrus(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug toggles debug-level logging on the package logger
func SetDebug(debug bool) {
	if debug {
		std.SetLevel(logrus.DebugLevel)
	} else {
		std.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput directs the package logger's output to w
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Field is a single structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a structured log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogWithFields returns an entry carrying the given structured fields
func LogWithFields(fields ...Field) *logrus.Entry {
	lf := logrus.Fields{}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return std.WithFields(lf)
}

// Info logs a formatted message at info level
func Info(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Debug logs a formatted message at debug level
func Debug(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Warn logs a formatted message at warn level
func Warn(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Warnf logs a formatted message at warn level
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}

// Error logs a formatted message at error level
func Error(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

// Info logs a formatted message at info level
func (lg *Logger) Info(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

// Infof logs a formatted message at info level
func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

// Debug logs a formatted message at debug level
func (lg *Logger) Debug(format string, args ...interface{}) {
	lg.l.Debugf(format, args...)
}

// Warn logs a formatted message at warn level
func (lg *Logger) Warn(format string, args ...interface{}) {
	lg.l.Warnf(format, args...)
}

// Error logs a formatted message at error level
func (lg *Logger) Error(format string, args ...interface{}) {
	lg.l.Errorf(format, args...)
}

// SetDebug toggles debug-level logging on this logger
func (lg *Logger) SetDebug(debug bool) {
	if debug {
		lg.l.SetLevel(logrus.DebugLevel)
	} else {
		lg.l.SetLevel(logrus.InfoLevel)
	}
}

// WithFields returns an entry carrying the given structured fields
func (lg *Logger) WithFields(fields ...Field) *logrus.Entry {
	lf := logrus.Fields{}
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lg.l.WithFields(lf)
}
