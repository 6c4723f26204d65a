// Package ui - Terminal user interface
// Console output and the interactive period prompt for the run command.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted output
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Info prints an informational line
func (w *Writer) Info(msg string) {
	w.Println("  %s", msg)
}

// Success prints a success line
func (w *Writer) Success(msg string) {
	w.Println("%s %s", w.color(Green, "✓"), msg)
}

// Warning prints a warning line
func (w *Writer) Warning(msg string) {
	w.Println("%s %s", w.color(Yellow, "⚠"), msg)
}

// Error prints an error line
func (w *Writer) Error(msg string) {
	w.Println("%s %s", w.color(Red, "✗"), msg)
}
