package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the default logger, creating it from DefaultConfig on
// first use. If the "logs" directory cannot be created the default logger
// silently drops every entry.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		created, err := New(DefaultConfig())
		if err != nil {
			created = newDisabled()
		}
		defaultLogger = created
	}
	return defaultLogger
}

// SetDefault sets the default logger. The previous one is not shut down.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Shutdown drains and closes the default logger if one was ever created
func Shutdown() error {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l == nil {
		return nil
	}
	return l.Shutdown()
}
