// Package queue provides the unbounded FIFO that connects log producers to
// the single writer goroutine.
//
// Push never blocks beyond the internal mutex, so a slow disk can never
// stall a caller. Pop blocks until an item arrives or the queue is closed.
// After Close, Push rejects new items while Pop keeps returning the items
// already queued, in order, and reports false only once the queue is both
// closed and empty. That gives the consumer drain-then-exit semantics with
// a single signal.
package queue
