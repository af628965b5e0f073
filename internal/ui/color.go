// Package ui provides the colored console logger for lxd-profile.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Colors
	Red    = color.New(color.FgRed)
	Green  = color.New(color.FgGreen)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
)

// Logger writes leveled, colored messages to a single writer.
// Info and Success are only printed in verbose mode; warnings and errors
// are always printed.
type Logger struct {
	out     io.Writer
	verbose bool
	color   bool
}

// New returns a Logger writing to out. Color is used only when out is a
// terminal and NO_COLOR is not set.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{
		out:     out,
		verbose: verbose,
		color:   !color.NoColor && isTerminal(out),
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return &Logger{out: io.Discard}
}

// Verbose reports whether Info messages are printed.
func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

// Info prints a blue progress message in verbose mode.
func (l *Logger) Info(format string, args ...any) {
	if !l.Verbose() {
		return
	}
	l.print(Blue, format, args...)
}

// Success prints a green message with checkmark in verbose mode.
func (l *Logger) Success(format string, args ...any) {
	if !l.Verbose() {
		return
	}
	l.print(Green, "✓ "+format, args...)
}

// Warning prints a yellow warning message.
func (l *Logger) Warning(format string, args ...any) {
	l.print(Yellow, "⚠ "+format, args...)
}

// Error prints a red error message with X.
func (l *Logger) Error(format string, args ...any) {
	l.print(Red, "✗ "+format, args...)
}

func (l *Logger) print(c *color.Color, format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}
	if !l.color {
		fmt.Fprintf(l.out, format+"\n", args...)
		return
	}
	// Force color: fatih/color only auto-detects stdout.
	colored := *c
	colored.EnableColor()
	colored.Fprintf(l.out, format+"\n", args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
