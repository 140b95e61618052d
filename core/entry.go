package core

import (
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for conditions worth attention
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the display name used in formatted lines
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "Debug"
	case InfoLevel:
		return "Info"
	case WarningLevel:
		return "Warning"
	case ErrorLevel:
		return "Error"
	default:
		return "Unknown"
	}
}

// Valid reports whether l is one of the declared levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= ErrorLevel
}

// Entry is a single submitted log event. It is passed by value and never
// mutated after NewEntry returns.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}

// NewEntry stamps msg with the current local time
func NewEntry(level Level, msg string) Entry {
	return Entry{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
}
