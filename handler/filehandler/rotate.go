package filehandler

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// archiveTimeFormat is the yyyyMMdd_HHmmss suffix of archived files
const archiveTimeFormat = "20060102_150405"

// ArchiveName returns the archive file name for prefix at time t
func ArchiveName(prefix string, t time.Time) string {
	return prefix + "_" + t.Format(archiveTimeFormat) + ".log"
}

// rotateIfNeeded archives the active file when it is larger than maxSize.
// It also drops the cached handle when the active path no longer refers to
// it, so the following append reopens (and if needed recreates) the file.
// Callers must hold h.mu.
func (h *FileHandler) rotateIfNeeded() error {
	info, err := os.Stat(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		h.release()
		return nil
	}
	if err != nil {
		return err
	}

	if h.file != nil {
		open, statErr := h.file.Stat()
		if statErr != nil || !os.SameFile(open, info) {
			h.release()
		}
	}

	if h.maxSize <= 0 || info.Size() <= h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate closes the active file and renames it to its archive name.
// Same-second collisions follow os.Rename semantics for the platform.
func (h *FileHandler) rotate() error {
	h.release()

	archive := filepath.Join(h.dir, ArchiveName(h.prefix, h.now()))
	if err := os.Rename(h.path, archive); err != nil {
		return &RotateError{From: h.path, To: archive, Err: err}
	}

	h.stats.IncrementRotated()
	return nil
}

// release closes the cached handle, if any. Callers must hold h.mu.
func (h *FileHandler) release() {
	if h.file == nil {
		return
	}
	h.file.Close()
	h.file = nil
}
