package logger

import (
	"context"
	"log/slog"
	"strings"
)

// slogHandler is an adapter that implements slog.Handler on top of a
// Logger. Attributes are rendered as " key=value" after the message.
type slogHandler struct {
	logger *Logger
	attrs  string
	group  string
}

// SlogHandler returns a slog.Handler that feeds l, so l can back
// slog.New or slog.SetDefault.
func (l *Logger) SlogHandler() slog.Handler {
	return &slogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle renders the record's message and attributes into one message
func (s *slogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendSlogAttr(&b, s.group, a)
		return true
	})

	s.logger.submit(record.Time, level, b.String())
	return nil
}

// WithAttrs returns a new handler with additional pre-rendered attributes.
func (s *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendSlogAttr(&b, s.group, a)
	}
	return &slogHandler{
		logger: s.logger,
		attrs:  b.String(),
		group:  s.group,
	}
}

// WithGroup returns a new handler that qualifies later keys with name.
func (s *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &slogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a Level.
func slogLevelToCore(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return ErrorLevel
	case level >= slog.LevelWarn:
		return WarningLevel
	case level >= slog.LevelInfo:
		return InfoLevel
	default:
		return DebugLevel
	}
}

// appendSlogAttr writes a as " key=value", flattening groups into dotted keys.
func appendSlogAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, sub := range a.Value.Group() {
			appendSlogAttr(b, key, sub)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
