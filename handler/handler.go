package handler

import (
	"errors"

	"github.com/philipp01105/asynclog/core"
)

// ErrClosed is returned when writing to a handler after Close
var ErrClosed = errors.New("handler: closed")

// Handler is a synchronous output sink. The logger's worker goroutine is
// the only caller of Handle, so implementations see entries one at a time
// and in queue order.
type Handler interface {
	// Handle writes the pre-formatted line for entry
	Handle(entry core.Entry, line string) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}
