package logger

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// zapCore implements zapcore.Core on top of a Logger, so existing zap
// call sites can write through the asynclog pipeline.
type zapCore struct {
	logger *Logger
	fields []zapcore.Field
}

// ZapCore returns a zapcore.Core that feeds l. Use it with zap.New.
// Fields are rendered as sorted " key=value" pairs after the message.
func (l *Logger) ZapCore() zapcore.Core {
	return &zapCore{logger: l}
}

// Enabled follows the Logger's current minimum level
func (c *zapCore) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToCore(level))
}

// With returns a copy of the core carrying additional fields
func (c *zapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &zapCore{logger: c.logger, fields: merged}
}

// Check adds the core to ce when the entry's level is enabled
func (c *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders ent and fields into one message and queues it. Entries
// above Error (DPanic, Panic, Fatal) are flushed before returning because
// zap terminates the goroutine or process right after.
func (c *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var b strings.Builder
	if ent.LoggerName != "" {
		b.WriteString(ent.LoggerName)
		b.WriteString(": ")
	}
	b.WriteString(ent.Message)

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}

	c.logger.submit(ent.Time, zapLevelToCore(ent.Level), b.String())

	if ent.Level > zapcore.ErrorLevel {
		c.logger.Flush()
	}
	return nil
}

// Sync waits until everything queued so far has been written
func (c *zapCore) Sync() error {
	c.logger.Flush()
	return nil
}

// zapLevelToCore converts a zapcore.Level to a Level.
func zapLevelToCore(level zapcore.Level) Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return ErrorLevel
	case level >= zapcore.WarnLevel:
		return WarningLevel
	case level >= zapcore.InfoLevel:
		return InfoLevel
	default:
		return DebugLevel
	}
}
