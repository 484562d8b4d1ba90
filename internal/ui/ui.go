// Package ui holds user-facing terminal output helpers.
//
// Everything here writes plain text; ANSI color is applied only when the
// target stream is a TTY and NO_COLOR is unset.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var out io.Writer = os.Stdout
var errOut io.Writer = os.Stderr

// SetWriters overrides the output writers (for testing).
func SetWriters(stdout, stderr io.Writer) {
	out = stdout
	errOut = stderr
}

var stdoutColor = detectColor(os.Stdout)
var stderrColor = detectColor(os.Stderr)

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled overrides color detection (for testing).
func SetColorEnabled(enabled bool) {
	stdoutColor = enabled
	stderrColor = enabled
}

func ansi(code, s string) string {
	if !stdoutColor {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func ansiErr(code, s string) string {
	if !stderrColor {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold returns s in bold.
func Bold(s string) string { return ansi("1", s) }

// Dim returns s dimmed.
func Dim(s string) string { return ansi("2", s) }

// Green returns s in green.
func Green(s string) string { return ansi("32", s) }

// Red returns s in red.
func Red(s string) string { return ansi("31", s) }

// Yellow returns s in yellow.
func Yellow(s string) string { return ansi("33", s) }

// OKTag returns a green check mark.
func OKTag() string { return Green("✓") }

// FailTag returns a red cross.
func FailTag() string { return Red("✗") }

// Section prints a bold title with a thin underline.
func Section(title string) {
	fmt.Fprintln(out, Bold(title))
	fmt.Fprintln(out, Dim(strings.Repeat("─", len(title))))
}

// Print writes a plain line to stdout.
func Print(msg string) {
	fmt.Fprintln(out, msg)
}

// Printf writes a formatted line to stdout.
func Printf(format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}

// Info prints a user-facing message to stderr with no prefix.
func Info(msg string) {
	fmt.Fprintln(errOut, msg)
}

// Warn prints a user-facing warning to stderr.
func Warn(msg string) {
	fmt.Fprintf(errOut, "%s %s\n", ansiErr("33", "Warning:"), msg)
}

// Warnf prints a formatted user-facing warning to stderr.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}

// Error prints a user-facing error to stderr.
func Error(msg string) {
	fmt.Fprintf(errOut, "%s %s\n", ansiErr("31", "Error:"), msg)
}

// Errorf prints a formatted user-facing error to stderr.
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}
