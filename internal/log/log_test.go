package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInit_VerboseControlsStderrLevel(t *testing.T) {
	t.Run("quiet hides info", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Init(Options{Stderr: &buf}); err != nil {
			t.Fatalf("Init: %v", err)
		}
		Info("hidden")
		Warn("shown")
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("info message should be suppressed without verbose, got %q", out)
		}
		if !strings.Contains(out, "shown") {
			t.Errorf("warn message should always appear, got %q", out)
		}
	})

	t.Run("verbose shows debug", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Init(Options{Verbose: true, Stderr: &buf}); err != nil {
			t.Fatalf("Init: %v", err)
		}
		Debug("details")
		if !strings.Contains(buf.String(), "details") {
			t.Errorf("debug message should appear with verbose, got %q", buf.String())
		}
	})
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Verbose: true, JSONFormat: true, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("structured", "key", "value")
	out := buf.String()
	if !strings.Contains(out, `"msg":"structured"`) || !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
}

func TestDebugDir_WritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := Init(Options{DebugDir: dir, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	Debug("to file only")

	name := time.Now().Format("2006-01-02") + ".jsonl"
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading debug file: %v", err)
	}
	if !strings.Contains(string(data), "to file only") {
		t.Errorf("debug file missing record, got %q", string(data))
	}
	if strings.Contains(buf.String(), "to file only") {
		t.Errorf("debug record should not reach stderr when not verbose")
	}
}

func TestRemoveOldFiles(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "2020-01-01.jsonl")
	if err := os.WriteFile(old, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recent := filepath.Join(dir, time.Now().Format("2006-01-02")+".jsonl")
	if err := os.WriteFile(recent, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	keep := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(keep, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	removeOldFiles(dir, 7)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old debug file should be removed")
	}
	if _, err := os.Stat(recent); err != nil {
		t.Error("recent debug file should survive cleanup")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("non-log file should never be removed")
	}
}
