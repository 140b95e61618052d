package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/handler"
	"github.com/philipp01105/asynclog/handler/consolehandler"
	"github.com/philipp01105/asynclog/handler/filehandler"
	"github.com/philipp01105/asynclog/queue"
)

// Config holds the constructor-time settings of a Logger.
// Start from DefaultConfig: the zero MinimumLevel is DebugLevel.
type Config struct {
	// Directory holds the active and archived log files (default: "logs")
	Directory string
	// FilePrefix names the active file {FilePrefix}.log (default: "app")
	FilePrefix string
	// MaxFileSizeMB is the active file size that triggers rotation (default: 5)
	MaxFileSizeMB int
	// MinimumLevel drops entries below it at submission time (default: InfoLevel)
	MinimumLevel Level
	// Console receives the colored copy of every line (default: os.Stdout)
	Console io.Writer
	// Color selects when console escape sequences are written (default: auto)
	Color consolehandler.ColorMode
	// Formatter renders entries (default: formatter.Default)
	Formatter formatter.Formatter
	// ErrorHandler receives sink errors on the worker goroutine (default: discard).
	// It must not block and must not call Flush or Shutdown.
	ErrorHandler func(error)
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Directory:     "logs",
		FilePrefix:    "app",
		MaxFileSizeMB: 5,
		MinimumLevel:  InfoLevel,
		Console:       os.Stdout,
		Color:         consolehandler.ColorAuto,
	}
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Directory == "" {
		cfg.Directory = def.Directory
	}
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = def.FilePrefix
	}
	if cfg.MaxFileSizeMB <= 0 {
		cfg.MaxFileSizeMB = def.MaxFileSizeMB
	}
	if cfg.Console == nil {
		cfg.Console = def.Console
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.Default
	}
}

// record is one queue item. A record with flushed set is a barrier used by
// Flush and carries no entry.
type record struct {
	entry   core.Entry
	line    string
	flushed chan struct{}
}

// Logger submits entries to a single background worker that writes each
// one to the console and then to the rotating log file.
type Logger struct {
	level     atomic.Int32
	formatter formatter.Formatter
	queue     *queue.Queue[record]
	console   handler.Handler
	file      handler.Handler
	onError   func(error)
	done      chan struct{}

	queued   atomic.Uint64
	dropped  atomic.Uint64
	barriers atomic.Int64 // Flush records still in the queue

	shutdownOnce sync.Once
}

// New creates the log directory, builds both sinks and starts the worker.
// The only error it returns wraps ErrDirectoryCreation.
func New(cfg Config) (*Logger, error) {
	applyDefaults(&cfg)

	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Directory: cfg.Directory,
		Prefix:    cfg.FilePrefix,
		MaxSize:   int64(cfg.MaxFileSizeMB) * 1024 * 1024,
	})
	if err != nil {
		return nil, err
	}

	ch := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: cfg.Console,
		Color:  cfg.Color,
	})

	l := newLogger(cfg, ch, fh)
	go l.run()
	return l, nil
}

func newLogger(cfg Config, console, file handler.Handler) *Logger {
	l := &Logger{
		formatter: cfg.Formatter,
		queue:     queue.New[record](),
		console:   console,
		file:      file,
		onError:   cfg.ErrorHandler,
		done:      make(chan struct{}),
	}
	if l.formatter == nil {
		l.formatter = formatter.Default
	}
	l.level.Store(int32(cfg.MinimumLevel))
	return l
}

// newDisabled returns a Logger without sinks or worker that drops every
// entry. It stands in when the default logger cannot be constructed.
func newDisabled() *Logger {
	l := newLogger(Config{MinimumLevel: InfoLevel}, nil, nil)
	l.queue.Close()
	close(l.done)
	return l
}

// MinimumLevel returns the current submission threshold
func (l *Logger) MinimumLevel() Level {
	return Level(l.level.Load())
}

// SetMinimumLevel changes the threshold for entries submitted from now
// on. Entries already queued are written regardless.
func (l *Logger) SetMinimumLevel(level Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether an entry at level would be queued
func (l *Logger) Enabled(level Level) bool {
	return level >= l.MinimumLevel()
}

// Log submits msg at level. Below the threshold it returns without
// touching the queue. It never waits for I/O. After Shutdown the entry is
// dropped and counted in Stats().Dropped.
func (l *Logger) Log(level Level, msg string) {
	if level < l.MinimumLevel() {
		return
	}
	l.submit(time.Now(), level, msg)
}

// submit formats and enqueues an entry that already passed the level gate
func (l *Logger) submit(t time.Time, level Level, msg string) {
	if t.IsZero() {
		t = time.Now()
	}
	entry := core.Entry{Time: t, Level: level, Message: msg}
	rec := record{entry: entry, line: l.formatter.Format(entry)}
	if !l.queue.Push(rec) {
		l.dropped.Add(1)
		return
	}
	l.queued.Add(1)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.Log(DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.Log(InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.Log(WarningLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.Log(ErrorLevel, msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if DebugLevel < l.MinimumLevel() {
		return
	}
	l.submit(time.Now(), DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if InfoLevel < l.MinimumLevel() {
		return
	}
	l.submit(time.Now(), InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if WarningLevel < l.MinimumLevel() {
		return
	}
	l.submit(time.Now(), WarningLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if ErrorLevel < l.MinimumLevel() {
		return
	}
	l.submit(time.Now(), ErrorLevel, fmt.Sprintf(format, args...))
}

// Flush blocks until every entry queued before the call has been written.
// It returns immediately on a logger that has already shut down once the
// worker has exited.
func (l *Logger) Flush() {
	flushed := make(chan struct{})
	l.barriers.Add(1)
	if !l.queue.Push(record{flushed: flushed}) {
		l.barriers.Add(-1)
		<-l.done
		return
	}
	select {
	case <-flushed:
	case <-l.done:
	}
}

// Shutdown stops accepting entries, waits for the worker to write every
// queued entry and closes both sinks. Only the first call does any work;
// later calls return nil immediately.
func (l *Logger) Shutdown() error {
	var err error
	l.shutdownOnce.Do(func() {
		l.queue.Close()
		<-l.done

		if l.console != nil {
			err = multierr.Append(err, l.console.Close())
		}
		if l.file != nil {
			err = multierr.Append(err, l.file.Close())
		}
	})
	return err
}

// Close is an alias for Shutdown
func (l *Logger) Close() error {
	return l.Shutdown()
}

// Stats is a point-in-time view of the pipeline counters
type Stats struct {
	// Queued counts entries accepted into the queue
	Queued uint64
	// Dropped counts entries submitted after Shutdown
	Dropped uint64
	// Pending is the number of entries waiting for the worker. Flush
	// barriers are not counted.
	Pending int
	// Console and File hold the per-sink write counters
	Console handler.Snapshot
	File    handler.Snapshot
}

// Stats returns the current counters
func (l *Logger) Stats() Stats {
	s := Stats{
		Queued:  l.queued.Load(),
		Dropped: l.dropped.Load(),
		Pending: max(l.queue.Len()-int(l.barriers.Load()), 0),
	}
	if sp, ok := l.console.(handler.StatsProvider); ok {
		s.Console = sp.Stats()
	}
	if sp, ok := l.file.(handler.StatsProvider); ok {
		s.File = sp.Stats()
	}
	return s
}
