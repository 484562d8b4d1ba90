package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func setup(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	SetWriters(&stdout, &stderr)
	SetColorEnabled(false)
	t.Cleanup(func() {
		SetWriters(os.Stdout, os.Stderr)
	})
	return &stdout, &stderr
}

func TestWarnAndError_GoToStderr(t *testing.T) {
	stdout, stderr := setup(t)

	Warnf("slot %q missing", "help")
	Error("no API keys available")

	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
	got := stderr.String()
	if !strings.Contains(got, `Warning: slot "help" missing`) {
		t.Errorf("missing warning line, got %q", got)
	}
	if !strings.Contains(got, "Error: no API keys available") {
		t.Errorf("missing error line, got %q", got)
	}
}

func TestColorDisabled_NoEscapeCodes(t *testing.T) {
	SetColorEnabled(false)
	if got := Green("ok"); got != "ok" {
		t.Errorf("expected bare string with color off, got %q", got)
	}
	SetColorEnabled(true)
	if got := Green("ok"); !strings.Contains(got, "\033[32m") {
		t.Errorf("expected ANSI green with color on, got %q", got)
	}
	SetColorEnabled(false)
}

func TestSection(t *testing.T) {
	stdout, _ := setup(t)
	Section("API Key Status")
	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected title and underline, got %q", stdout.String())
	}
	if lines[0] != "API Key Status" {
		t.Errorf("unexpected title %q", lines[0])
	}
	if len([]rune(lines[1])) != len("API Key Status") {
		t.Errorf("underline should match title length, got %q", lines[1])
	}
}
