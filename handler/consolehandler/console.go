package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Color selects when escape sequences are written (default: ColorAuto)
	Color ColorMode
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// ConsoleHandler writes one line per entry, colored by level.
type ConsoleHandler struct {
	writer io.Writer
	styles [len(ansiColors)]termenv.Style
	plain  bool
	mu     sync.Mutex // serializes writes and protects buf
	buf    []byte
	stats  *handler.Stats
	closed bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	r := lipgloss.NewRenderer(cfg.Writer)
	switch cfg.Color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	h := &ConsoleHandler{
		writer: cfg.Writer,
		stats:  handler.NewStats(),
		buf:    make([]byte, 0, 256),
	}

	// Only the SGR color sequence is taken from the profile. lipgloss
	// rendering would align multi-line text and pad it with spaces.
	profile := r.ColorProfile()
	h.plain = profile == termenv.Ascii
	for c := ColorRed; int(c) < len(ansiColors); c++ {
		h.styles[c] = profile.String().Foreground(profile.Color(string(ansiColors[c])))
	}
	return h
}

// Handle writes line in the color of entry's level
func (h *ConsoleHandler) Handle(entry core.Entry, line string) error {
	return h.WriteLine(line, ColorFor(entry.Level))
}

// WriteLine writes line followed by a newline in color c. The color is
// applied to this write only; no terminal state outlives the call.
func (h *ConsoleHandler) WriteLine(line string, c Color) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}

	h.buf = h.buf[:0]
	if !h.plain && c != ColorDefault && int(c) < len(h.styles) {
		h.buf = append(h.buf, h.styles[c].Styled(line)...)
	} else {
		h.buf = append(h.buf, line...)
	}
	h.buf = append(h.buf, '\n')

	_, err := h.writer.Write(h.buf)
	h.stats.Record(err)

	// Don't keep very large buffers
	if cap(h.buf) > 64*1024 {
		h.buf = make([]byte, 0, 256)
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The underlying writer is left open; it is
// usually os.Stdout and owned by the process.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
