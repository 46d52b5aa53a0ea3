// report.go renders a verification Report for the console.
//
// Separated from verify.go so the checks stay free of presentation. Markers
// come from the ui package, which handles colour and NO_COLOR.

package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/palette/internal/ui"
)

// Print writes a human-readable report to w.
func Print(w io.Writer, r Report) {
	fmt.Fprintf(w, "\n%s Palette verification\n", ui.Palette())
	fmt.Fprintf(w, "%s Total colors: %d\n", ui.Info(), r.Total)
	fmt.Fprintf(w, "%s Categories: %s\n", ui.Info(), strings.Join(r.Categories, ", "))

	if c := r.Contrast; c != nil && c.Pass {
		fmt.Fprintf(w, "%s Contrast %s/%s: %.2f (WCAG AA met)\n", ui.Success(), c.Foreground, c.Background, c.Ratio)
	}

	if r.OK() {
		fmt.Fprintf(w, "\n%s Palette verified with no problems!\n", ui.Success())
		return
	}

	fmt.Fprintf(w, "\n%s Problems found:\n", ui.Warning())
	for _, issue := range r.Issues {
		fmt.Fprintf(w, "   %s %s\n", marker(issue.Severity), issue.Message)
	}
}

func marker(s Severity) string {
	if s == SeverityError {
		return ui.Error()
	}
	return ui.Warning()
}
