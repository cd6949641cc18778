package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DebugMode controls whether FprintDebug output is visible.
var DebugMode = false

// QuietMode suppresses INFO messages (errors/warnings still shown)
var QuietMode = false

// Severity labels, padded to the same width so messages line up.
const (
	labelInfo    = "INFO:"
	labelWarning = "WARNING:"
	labelError   = "ERROR:"
	labelDebug   = "DEBUG:"
	labelWidth   = 9
)

// ---------------------------------------------------------
// 1. Private Color Definitions
// ---------------------------------------------------------

var (
	red     = color.New(color.FgRed).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	gray    = color.New(color.FgWhite).SprintFunc() // FgWhite = Gray in ANSI
	bold    = color.New(color.Bold).SprintFunc()
)

// SetColor turns coloured output on or off for every printer.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// ---------------------------------------------------------
// 2. Semantic Styles
// ---------------------------------------------------------

// StyleError formats critical failure messages (Red).
func StyleError(msg string) string { return red(msg) }

// StyleWarning formats non-critical warnings (Yellow).
func StyleWarning(msg string) string { return yellow(msg) }

// StyleInfo formats status labels or properties (Magenta)
func StyleInfo(msg string) string { return magenta(msg) }

// StyleDebug formats low-level technical info (Gray).
func StyleDebug(msg string) string { return gray(msg) }

// StyleTitle
func StyleTitle(title string) string { return bold(cyan(title)) }

// padLabel pads before styling so the escape codes do not count towards the width
func padLabel(label string, style func(string) string) string {
	return style(fmt.Sprintf("%-*s", labelWidth, label))
}

// ---------------------------------------------------------
// 3. Log Printers
//    The F* variants write to w; PrintError writes to Stderr.
// ---------------------------------------------------------

// FprintInfo prints an informational message unless QuietMode is set.
// Output: INFO:    Message...
func FprintInfo(w io.Writer, format string, a ...interface{}) {
	if QuietMode {
		return
	}
	fmt.Fprintf(w, "%s%s\n", padLabel(labelInfo, StyleInfo), fmt.Sprintf(format, a...))
}

// FprintWarning prints a warning with a Yellow label.
// Output: WARNING: Memory is per slot.
func FprintWarning(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s%s\n", padLabel(labelWarning, StyleWarning), fmt.Sprintf(format, a...))
}

// FprintError prints an error with a Red label.
// Output: ERROR:   Improper value in the minutes field
func FprintError(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, "%s%s\n", padLabel(labelError, StyleError), fmt.Sprintf(format, a...))
}

// FprintDebug prints a debug message with a Gray label (only if DebugMode is true).
// Output: DEBUG:   Reading script from stdin
func FprintDebug(w io.Writer, format string, a ...interface{}) {
	if DebugMode {
		fmt.Fprintf(w, "%s%s\n", padLabel(labelDebug, StyleDebug), fmt.Sprintf(format, a...))
	}
}

// PrintError prints an error to Stderr.
func PrintError(format string, a ...interface{}) {
	FprintError(os.Stderr, format, a...)
}
