// Package filehandler provides the file sink: it appends formatted lines
// to {Directory}/{Prefix}.log and archives that file once it grows past a
// size limit.
//
// Rotation is checked before every append. When the active file is larger
// than MaxSize it is renamed to {Prefix}_{yyyyMMdd_HHmmss}.log using the
// wall clock at second precision, and the line lands in a fresh active
// file. The active file can therefore exceed MaxSize by at most one line.
// Archives are never reopened.
//
// The check-then-append sequence runs under one mutex per handler. The
// open file handle is reused between writes and dropped whenever the
// active path stops referring to it, so external moves or deletes are
// picked up on the next write.
//
// Two handlers pointed at the same directory and prefix are not
// coordinated.
package filehandler
