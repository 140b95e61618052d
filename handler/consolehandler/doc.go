// Package consolehandler provides the console sink: it writes formatted
// lines to any io.Writer (default: os.Stdout), colored by level.
//
// The color travels with each write as an explicit argument, resolved by
// ColorFor from the entry's Level: Error is red, Warning yellow, Debug
// cyan and Info uses the terminal default. Escape sequences wrap a single
// line and are closed before the newline, so nothing leaks into the next
// write and there is no global "current color" to reset.
//
// A lipgloss Renderer bound to the writer picks the termenv color profile.
// With ColorAuto it inspects the writer and drops escape sequences when it
// is not a terminal; ColorAlways and ColorNever pin the profile. Lines are
// wrapped in the color sequence only, so multi-line messages reach the
// console byte for byte as they reach the file.
package consolehandler
