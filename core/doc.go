// Package core defines the shared types used across asynclog.
//
// It provides the Level type for threshold filtering and the Entry value
// that represents a single log event. Levels compare by severity:
// Debug < Info < Warning < Error.
//
// Entry is a plain value. It is stamped once at submission time, copied
// into the queue, consumed by the worker and then discarded; nothing holds
// a pointer to it, so no pooling or reset logic is needed.
package core
