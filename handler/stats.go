package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts lines written successfully
	ProcessedTotal uint64
	// FailedTotal counts lines whose write returned an error
	FailedTotal uint64
	// RotatedTotal counts archive renames performed by file handlers
	RotatedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementRotated atomically increments the rotation counter
func (s *Stats) IncrementRotated() {
	atomic.AddUint64(&s.RotatedTotal, 1)
}

// Record counts the outcome of a single write
func (s *Stats) Record(err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed()
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	ProcessedTotal uint64
	FailedTotal    uint64
	RotatedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
		FailedTotal:    atomic.LoadUint64(&s.FailedTotal),
		RotatedTotal:   atomic.LoadUint64(&s.RotatedTotal),
	}
}
