// Package handler provides the Handler interface implemented by the two
// asynclog sinks and the Stats counters they share.
//
// Handlers are synchronous. Decoupling callers from I/O is the job of the
// logger's queue and single worker goroutine; by the time Handle is called
// the entry has already left the caller's goroutine, so handlers do not
// need their own queues or overflow policies.
//
// Built-in handlers:
//
//   - consolehandler writes lines to stdout (or any io.Writer) with a
//     color chosen from the entry's level.
//   - filehandler appends lines to {dir}/{prefix}.log and archives the file
//     to {dir}/{prefix}_{yyyyMMdd_HHmmss}.log once it exceeds a size limit.
//
// Both handlers track processed, failed and rotated counts via Stats,
// which can be queried at runtime through StatsProvider.
package handler
