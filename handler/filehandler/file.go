package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Directory holds the active and archived files (default: "logs")
	Directory string
	// Prefix names the active file {Prefix}.log (default: "app")
	Prefix string
	// MaxSize is the size in bytes above which the active file is
	// archived before the next write (0 = never rotate)
	MaxSize int64
	// Now supplies the clock for archive names (default: time.Now)
	Now func() time.Time
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Directory == "" {
		cfg.Directory = "logs"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "app"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
}

// FileHandler appends lines to the active log file with size rotation
type FileHandler struct {
	dir     string
	prefix  string
	path    string
	maxSize int64
	now     func() time.Time
	mu      sync.Mutex // guards the rotation check and append as one step
	file    *os.File
	stats   *handler.Stats
	closed  bool
}

// NewFileHandler creates the log directory if needed and returns a
// handler for it. The active file itself is created by the first write.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	applyFileDefaults(&cfg)

	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDirectoryCreation, cfg.Directory, err)
	}

	return &FileHandler{
		dir:     cfg.Directory,
		prefix:  cfg.Prefix,
		path:    filepath.Join(cfg.Directory, cfg.Prefix+".log"),
		maxSize: cfg.MaxSize,
		now:     cfg.Now,
		stats:   handler.NewStats(),
	}, nil
}

// Path returns the path of the active file
func (h *FileHandler) Path() string {
	return h.path
}

// Handle appends line to the active file
func (h *FileHandler) Handle(_ core.Entry, line string) error {
	return h.WriteLine(line)
}

// WriteLine runs the rotation check and then appends line plus the
// platform newline. A failed rotation does not stop the append; both
// errors are returned combined.
func (h *FileHandler) WriteLine(line string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}

	rotErr := h.rotateIfNeeded()
	err := multierr.Append(rotErr, h.append(line))
	h.stats.Record(err)
	return err
}

// append writes line to the active file, opening it first if needed.
// Callers must hold h.mu.
func (h *FileHandler) append(line string) error {
	if h.file == nil {
		file, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return &WriteError{Path: h.path, Err: err}
		}
		h.file = file
	}

	if _, err := h.file.WriteString(line + newline); err != nil {
		h.release()
		return &WriteError{Path: h.path, Err: err}
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the active file. Calling Close again is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.file == nil {
		return nil
	}
	err := multierr.Append(h.file.Sync(), h.file.Close())
	h.file = nil
	return err
}
