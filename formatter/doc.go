// Package formatter defines how log entries are turned into text lines.
//
// The canonical line is
//
//	2006-01-02 15:04:05.000 [Info] message
//
// with the timestamp in local time at millisecond precision and the level
// display name in brackets. Lines carry no terminator; the console and
// file sinks append their own.
//
// TextFormatter.Format renders through FormatEntry into a pooled
// bytes.Buffer and time.AppendFormat to avoid per-call
// allocations, and pre-computes the bracketed level tags so the common
// path is a single WriteString call.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
