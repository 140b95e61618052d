package filehandler

import (
	"errors"
	"fmt"
)

// ErrDirectoryCreation is wrapped by the error NewFileHandler returns when
// the log directory cannot be created.
var ErrDirectoryCreation = errors.New("filehandler: cannot create log directory")

// WriteError reports a failure to open or append to the active file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("filehandler: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// RotateError reports a failed archive rename. The line that triggered
// the rotation is still appended to the active file.
type RotateError struct {
	From string
	To   string
	Err  error
}

func (e *RotateError) Error() string {
	return fmt.Sprintf("filehandler: rotate %s -> %s: %v", e.From, e.To, e.Err)
}

func (e *RotateError) Unwrap() error { return e.Err }
