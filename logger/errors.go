package logger

import (
	"github.com/philipp01105/asynclog/handler/filehandler"
)

// ErrDirectoryCreation is wrapped by New when the log directory cannot be
// created. It is the only error New returns.
var ErrDirectoryCreation = filehandler.ErrDirectoryCreation

// WriteError is reported to ErrorHandler when a line cannot be appended
type WriteError = filehandler.WriteError

// RotateError is reported to ErrorHandler when archiving the active file
// fails; the line is still appended.
type RotateError = filehandler.RotateError
