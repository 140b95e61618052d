package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/asynclog/core"
)

// DefaultTimestampFormat renders local time with millisecond precision
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// Formatter turns an entry into a single line without a trailing newline.
// Sinks append the line terminator they need.
type Formatter interface {
	// Format formats a log entry into a line
	Format(entry core.Entry) string
}

// Config holds formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
