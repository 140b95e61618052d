package formatter

import (
	"bytes"

	"github.com/philipp01105/asynclog/core"
)

// TextFormatter renders `{timestamp} [{Level}] {message}`
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry core.Entry) string {
	buf := getBuffer()
	f.FormatEntry(entry, buf)
	line := buf.String()
	putBuffer(buf)
	return line
}

// pre-formatted level tags to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel:   " [Debug] ",
	core.InfoLevel:    " [Info] ",
	core.WarningLevel: " [Warning] ",
	core.ErrorLevel:   " [Error] ",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString(" [Unknown] ")
	}

	buf.WriteString(entry.Message)
}

// Default is the formatter used when none is configured
var Default Formatter = NewTextFormatter(Config{})
