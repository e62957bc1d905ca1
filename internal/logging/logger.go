// Package logging provides a logging abstraction layer that decouples the
// application from the underlying logging framework.
package logging

import "sync"

// Logger is the structured logging interface used throughout the
// application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// Fatal logs a fatal-level message and exits the program.
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted fatal-level message and exits the program.
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

var (
	defaultLogger Logger = NewLogrusAdapter("info", "text")
	defaultMu     sync.RWMutex
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide default logger. Called once at
// startup after configuration is loaded.
func SetLogger(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}
