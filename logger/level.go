package logger

import (
	"github.com/philipp01105/asynclog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
)

// ParseLevel converts a level name such as "info" or "warn" to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
