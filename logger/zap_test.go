package logger

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapCore_Write(t *testing.T) {
	log, _, dir := newTestLogger(t, InfoLevel)
	zl := zap.New(log.ZapCore())

	zl.Debug("filtered")
	zl.With(zap.String("svc", "api")).Warn("slow request", zap.Int("ms", 250))
	zl.Named("db").Error("query failed", zap.Error(errString("timeout")))
	if err := zl.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}

	lines := fileLines(t, filepath.Join(dir, "t.log"))
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", lines)
	}
	if !strings.HasSuffix(lines[0], "[Warning] slow request ms=250 svc=api") {
		t.Errorf("Unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[Error] db: query failed error=timeout") {
		t.Errorf("Unexpected line %q", lines[1])
	}
}

func TestZapCore_Enabled(t *testing.T) {
	log, _, _ := newTestLogger(t, WarningLevel)
	core := log.ZapCore()

	if core.Enabled(zapcore.InfoLevel) {
		t.Error("Info should not be enabled when level is Warning")
	}
	if !core.Enabled(zapcore.WarnLevel) || !core.Enabled(zapcore.DPanicLevel) {
		t.Error("Warn and above should be enabled when level is Warning")
	}
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want Level
	}{
		{zapcore.DebugLevel, DebugLevel},
		{zapcore.InfoLevel, InfoLevel},
		{zapcore.WarnLevel, WarningLevel},
		{zapcore.ErrorLevel, ErrorLevel},
		{zapcore.FatalLevel, ErrorLevel},
	}
	for _, tt := range tests {
		if got := zapLevelToCore(tt.in); got != tt.want {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }
