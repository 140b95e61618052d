package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlogHandler_Enabled(t *testing.T) {
	log, _, _ := newTestLogger(t, InfoLevel)
	sh := log.SlogHandler()

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}

	log.SetMinimumLevel(ErrorLevel)
	if sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should follow SetMinimumLevel")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	log, _, dir := newTestLogger(t, DebugLevel)
	sl := slog.New(log.SlogHandler())

	sl.Info("user login", "user", "alice", "count", 42)
	sl.Warn("nested", slog.Group("req", slog.Int("id", 7), slog.String("path", "/x")))
	sl.With("svc", "api").WithGroup("http").Error("failed", "status", 500)
	sl.Debug("dbg", slog.Group("", slog.Bool("inline", true)))
	log.Shutdown()

	lines := fileLines(t, filepath.Join(dir, "t.log"))
	want := []string{
		"[Info] user login user=alice count=42",
		"[Warning] nested req.id=7 req.path=/x",
		"[Error] failed svc=api http.status=500",
		"[Debug] dbg inline=true",
	}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %q", len(want), lines)
	}
	for i, suffix := range want {
		if !strings.HasSuffix(lines[i], suffix) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], suffix)
		}
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, DebugLevel},
		{slog.LevelDebug, DebugLevel},
		{slog.LevelInfo, InfoLevel},
		{slog.LevelWarn, WarningLevel},
		{slog.LevelError, ErrorLevel},
		{slog.LevelError + 4, ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
