// Package diff renders line diffs between an existing generated stylesheet
// and freshly generated output, used by "palette generate --check".
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// Longer unchanged runs are collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old     string // old label
	New     string // new label
	Diff    string // plain diff text
	Changed bool
}

// Compute returns a line-oriented diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	changed := false
	for _, x := range d {
		if x.Type != diffmatchpatch.DiffEqual {
			changed = true
			break
		}
	}

	return Result{
		Old:     oldLabel,
		New:     newLabel,
		Diff:    format(d),
		Changed: changed,
	}
}

func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for i, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&b, "- ", lines)
		case diffmatchpatch.DiffInsert:
			writeLines(&b, "+ ", lines)
		case diffmatchpatch.DiffEqual:
			head, tail := contextLines, contextLines
			if i == 0 {
				head = 0
			}
			if i == len(diffs)-1 {
				tail = 0
			}
			if len(lines) > head+tail {
				writeLines(&b, "  ", lines[:head])
				b.WriteString("  ...\n")
				writeLines(&b, "  ", lines[len(lines)-tail:])
			} else {
				writeLines(&b, "  ", lines)
			}
		}
	}
	return b.String()
}

func writeLines(b *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		b.WriteString(prefix + l + "\n")
	}
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
