// Package ui provides the status markers printed by palette commands.
//
// Colour is applied with fatih/color, which already disables itself when
// stdout is not a terminal or NO_COLOR is set. FORCE_COLOR re-enables it for
// CI logs that render ANSI sequences.
package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	if fc := strings.TrimSpace(os.Getenv("FORCE_COLOR")); fc != "" && fc != "0" {
		color.NoColor = false
	}
}

var (
	clrSuccess = color.New(color.FgGreen, color.Bold)
	clrError   = color.New(color.FgRed, color.Bold)
	clrWarning = color.New(color.FgYellow, color.Bold)
	clrPrimary = color.New(color.FgMagenta, color.Bold)
	clrInfo    = color.New(color.FgCyan)
)

// SetColour forces colour on or off, overriding terminal detection.
func SetColour(on bool) {
	color.NoColor = !on
}

// Colour reports whether markers are currently coloured.
func Colour() bool {
	return !color.NoColor
}

// Success marks a completed step.
func Success() string { return clrSuccess.Sprint("✔") }

// Error marks a fatal error or an invalid entry.
func Error() string { return clrError.Sprint("✖") }

// Warning marks a non-fatal problem.
func Warning() string { return clrWarning.Sprint("⚠") }

// Palette heads a verification report.
func Palette() string { return clrPrimary.Sprint("◆") }

// Info marks a summary line.
func Info() string { return clrInfo.Sprint("▸") }
