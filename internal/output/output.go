// Package output provides formatted output utilities for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writer handles CLI output formatting.
type Writer struct {
	out   io.Writer
	err   io.Writer
	color bool
	quiet bool
}

// New creates a new Writer with default settings.
func New() *Writer {
	return &Writer{
		out:   os.Stdout,
		err:   os.Stderr,
		color: isTerminal(),
	}
}

// NewWithWriters creates a Writer with custom io.Writers (for testing).
func NewWithWriters(out, err io.Writer, color bool) *Writer {
	return &Writer{
		out:   out,
		err:   err,
		color: color,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// Quiet reports whether quiet mode is on.
func (w *Writer) Quiet() bool {
	return w.quiet
}

// Println writes a line to stdout.
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Errorln writes a line to stderr.
func (w *Writer) Errorln(format string, args ...interface{}) {
	fmt.Fprintf(w.err, format+"\n", args...)
}

// Info prints an info message to stderr (skipped in quiet mode). Stdout is
// kept for results so it can be piped.
func (w *Writer) Info(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	w.Errorln(format, args...)
}

// Warning prints a warning message (skipped in quiet mode).
func (w *Writer) Warning(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	if w.color {
		w.Errorln(yellow+"warning:"+reset+" "+format, args...)
	} else {
		w.Errorln("warning: "+format, args...)
	}
}

// ErrorPrefix prints an error message with the testgrep prefix to stderr.
func (w *Writer) ErrorPrefix(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%stestgrep:%s %s", red, reset, msg)
	} else {
		w.Errorln("testgrep: %s", msg)
	}
}

// Section prints a section header.
func (w *Writer) Section(title string) {
	if w.quiet {
		return
	}
	if w.color {
		w.Println("%s=== %s ===%s", bold, title, reset)
	} else {
		w.Println("=== %s ===", title)
	}
}

// Lines prints each item on its own line, with no decoration.
func (w *Writer) Lines(items []string) {
	for _, item := range items {
		w.Println("%s", item)
	}
}

// JSON writes v to stdout as indented JSON.
func (w *Writer) JSON(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table prints a simple table.
func (w *Writer) Table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	w.Println("%s", joinPadded(headers, widths))

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	w.Println("%s", strings.Join(sep, "  "))

	for _, row := range rows {
		w.Println("%s", joinPadded(row, widths))
	}
}

func joinPadded(cells []string, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i == len(widths)-1 {
			parts = append(parts, cell)
			continue
		}
		parts = append(parts, fmt.Sprintf("%-*s", widths[i], cell))
	}
	return strings.Join(parts, "  ")
}

var titleCase = cases.Title(language.English)

// StatusLabel renders a selection status ("run", "skip", ...) as a fixed
// width, title-cased label.
func StatusLabel(status string) string {
	return fmt.Sprintf("%-7s", titleCase.String(status))
}

// Test prints one planned test: its status, title and tags. The status
// colours the label when colour is enabled.
func (w *Writer) Test(status, title string, tags []string) {
	label := StatusLabel(status)
	suffix := ""
	if len(tags) > 0 {
		suffix = "  [" + strings.Join(tags, " ") + "]"
	}

	if !w.color {
		w.Println("  %s %s%s", label, title, suffix)
		return
	}
	w.Println("  %s%s%s %s%s%s%s", statusColor(status), label, reset, title, dim, suffix, reset)
}

func statusColor(status string) string {
	switch status {
	case "run":
		return green
	case "pending":
		return cyan
	default:
		return dim
	}
}

// SummaryItem prints a labeled summary item with value.
func (w *Writer) SummaryItem(label, value string) {
	if w.quiet {
		return
	}
	if w.color {
		w.Println("  %s%s:%s %s", dim, label, reset, value)
	} else {
		w.Println("  %s: %s", label, value)
	}
}

// Hint prints a hint message for the user to stderr.
func (w *Writer) Hint(format string, args ...interface{}) {
	if w.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if w.color {
		w.Errorln("%s%s%s", dim, msg, reset)
	} else {
		w.Errorln("%s", msg)
	}
}

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	if fi, _ := os.Stdout.Stat(); fi != nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)
