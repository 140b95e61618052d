package consolehandler

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/philipp01105/asynclog/core"
)

// Color is the foreground color a line is printed in
type Color uint8

const (
	// ColorDefault leaves the terminal's foreground untouched
	ColorDefault Color = iota
	// ColorRed is used for errors
	ColorRed
	// ColorYellow is used for warnings
	ColorYellow
	// ColorCyan is used for debug output
	ColorCyan
)

// String returns the color name
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	default:
		return "unknown"
	}
}

// ansiColors maps each Color to its basic ANSI palette index
var ansiColors = [...]lipgloss.Color{
	ColorRed:    lipgloss.Color("1"),
	ColorYellow: lipgloss.Color("3"),
	ColorCyan:   lipgloss.Color("6"),
}

// ColorFor resolves the display color from the entry level itself, never
// from the formatted text, so a message containing "[Error]" keeps its
// level's color.
func ColorFor(level core.Level) Color {
	switch level {
	case core.ErrorLevel:
		return ColorRed
	case core.WarningLevel:
		return ColorYellow
	case core.DebugLevel:
		return ColorCyan
	default:
		return ColorDefault
	}
}

// ColorMode selects whether escape sequences are emitted
type ColorMode uint8

const (
	// ColorAuto colors output only when the writer is a capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways forces basic ANSI colors
	ColorAlways
	// ColorNever writes plain text
	ColorNever
)

// ParseColorMode converts "auto", "always" or "never" to a ColorMode
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "auto", "":
		return ColorAuto, true
	case "always":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	default:
		return ColorAuto, false
	}
}
