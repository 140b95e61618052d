package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd_PipesStdin(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("first\nsecond\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--dir", dir, "--prefix", "cli", "--level", "warn", "--color", "never", "--stats"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cli.log"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", lines)
	}
	if !strings.HasSuffix(strings.TrimSpace(lines[0]), "[Warning] first") {
		t.Errorf("Unexpected first line %q", lines[0])
	}
	if !strings.Contains(out.String(), "[Warning] second") {
		t.Errorf("Expected console copy on stdout, got: %s", out.String())
	}
	if !strings.Contains(errOut.String(), "queued=2") {
		t.Errorf("Expected stats on stderr, got: %s", errOut.String())
	}
}

func TestRootCmd_MinLevelFilters(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("quiet\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", dir, "--level", "debug", "--min-level", "info"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected filtered output, got: %s", out.String())
	}
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--level", "loud"},
		{"--min-level", "nope"},
		{"--color", "rainbow"},
	} {
		cmd := newRootCmd()
		cmd.SetIn(strings.NewReader(""))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--dir", t.TempDir()}, args...))
		if err := cmd.ExecuteContext(context.Background()); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}
