// Package logger is the public API of asynclog. Most users only need to
// import this package.
//
// A Logger owns an unbounded queue and exactly one worker goroutine. Log
// and its wrappers check the level, format the line and enqueue it; they
// never wait for the console or the disk. The worker writes each entry to
// the console and then to {Directory}/{FilePrefix}.log, archiving that file
// as {FilePrefix}_{yyyyMMdd_HHmmss}.log once it grows past MaxFileSizeMB.
//
//	log, err := logger.New(logger.DefaultConfig())
//	if err != nil {
//	    return err // wraps logger.ErrDirectoryCreation
//	}
//	defer log.Shutdown()
//	log.Info("ready")
//
// Shutdown drains every queued entry before it returns and is safe to call
// more than once. Entries submitted afterwards are dropped and counted in
// Stats().Dropped.
//
// Write failures never reach the caller: they go to Config.ErrorHandler on
// the worker goroutine and are counted per sink in Stats.
//
// The package also initializes a default Logger lazily on the first call
// to a package-level function such as Info, and offers adapters so the same
// pipeline can back log/slog (SlogHandler) and zap (ZapCore).
package logger
