package logger

import (
	"io"

	"github.com/philipp01105/asynclog/formatter"
	"github.com/philipp01105/asynclog/handler/consolehandler"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new logger builder seeded with DefaultConfig
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WithDirectory sets the log directory
func (b *Builder) WithDirectory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// WithFilePrefix sets the active file name prefix
func (b *Builder) WithFilePrefix(prefix string) *Builder {
	b.cfg.FilePrefix = prefix
	return b
}

// WithMaxFileSizeMB sets the rotation threshold in megabytes
func (b *Builder) WithMaxFileSizeMB(mb int) *Builder {
	b.cfg.MaxFileSizeMB = mb
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level Level) *Builder {
	b.cfg.MinimumLevel = level
	return b
}

// WithConsole sets the console writer
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.cfg.Console = w
	return b
}

// WithColor sets the console color mode
func (b *Builder) WithColor(mode consolehandler.ColorMode) *Builder {
	b.cfg.Color = mode
	return b
}

// WithFormatter replaces the line formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.cfg.Formatter = f
	return b
}

// WithErrorHandler sets the callback for sink errors
func (b *Builder) WithErrorHandler(fn func(error)) *Builder {
	b.cfg.ErrorHandler = fn
	return b
}

// Config returns the configuration built so far
func (b *Builder) Config() Config {
	return b.cfg
}

// Build creates the Logger instance
func (b *Builder) Build() (*Logger, error) {
	return New(b.cfg)
}
