// Package verify checks a palette for content issues: malformed hex codes,
// duplicated colour values, and insufficient contrast between a reference
// foreground and background.
//
// Issues are informational. A report with issues is still a successful run;
// only callers opting into strict mode treat them as failures.
package verify

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jpl-au/palette/internal/contrast"
	"github.com/jpl-au/palette/internal/palette"
)

// hexPattern matches #RGB and #RRGGBB in either case.
var hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})$`)

// Default contrast references.
const (
	DefaultForeground = "purple.plum"
	DefaultBackground = "gray.white"
)

// Severity classifies an issue for display.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind identifies the check that raised an issue.
type Kind string

const (
	KindFormat    Kind = "format"
	KindDuplicate Kind = "duplicate"
	KindContrast  Kind = "contrast"
)

// Issue is a single content problem found in the palette.
type Issue struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ContrastResult records the contrast check when it ran.
type ContrastResult struct {
	Foreground string  `json:"foreground"` // "<category>-<shade>"
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"` // rounded to two decimals
	Minimum    float64 `json:"minimum"`
	Pass       bool    `json:"pass"`
}

// Report is the outcome of Check.
type Report struct {
	Total      int             `json:"total"`
	Categories []string        `json:"categories"`
	Issues     []Issue         `json:"issues"`
	Contrast   *ContrastResult `json:"contrast,omitempty"`
}

// OK reports whether no issues were found.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Options configures the contrast check. Zero values use the defaults.
type Options struct {
	Foreground string  // "<category>.<shade>"
	Background string  // "<category>.<shade>"
	MinRatio   float64 // defaults to contrast.MinimumAA
}

func (o Options) withDefaults() Options {
	if o.Foreground == "" {
		o.Foreground = DefaultForeground
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.MinRatio == 0 {
		o.MinRatio = contrast.MinimumAA
	}
	return o
}

// ValidHex reports whether s is a #RGB or #RRGGBB colour.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Check runs every content check against p.
func Check(p *palette.Palette, opts Options) Report {
	opts = opts.withDefaults()

	entries := p.Entries()
	r := Report{
		Total:      len(entries),
		Categories: p.Categories(),
		Issues:     []Issue{},
	}

	for _, e := range entries {
		if !ValidHex(e.Value) {
			r.Issues = append(r.Issues, Issue{
				Kind:     KindFormat,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Invalid color: %s = %s", e.Name(), e.Value),
			})
		}
	}

	// Exact string comparison: "#fff" and "#FFF" are distinct values.
	first := make(map[string]string, len(entries))
	for _, e := range entries {
		if name, ok := first[e.Value]; ok {
			r.Issues = append(r.Issues, Issue{
				Kind:     KindDuplicate,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("Duplicate color: %s and %s use %s", e.Name(), name, e.Value),
			})
			continue
		}
		first[e.Value] = e.Name()
	}

	if c := checkContrast(p, opts); c != nil {
		r.Contrast = c
		if !c.Pass {
			r.Issues = append(r.Issues, Issue{
				Kind:     KindContrast,
				Severity: SeverityWarning,
				Message: fmt.Sprintf("Insufficient contrast between %s and %s: %.2f (minimum %s for WCAG AA)",
					c.Foreground, c.Background, c.Ratio, formatRatio(c.Minimum)),
			})
		}
	}

	return r
}

// checkContrast returns nil when either reference colour is absent or unset
// ("", 0, false or null).
func checkContrast(p *palette.Palette, opts Options) *ContrastResult {
	fgCat, fgShade := SplitRef(opts.Foreground)
	bgCat, bgShade := SplitRef(opts.Background)

	fg, ok := p.Color(fgCat, fgShade)
	if !ok {
		return nil
	}
	bg, ok := p.Color(bgCat, bgShade)
	if !ok {
		return nil
	}

	ratio := contrast.Ratio(fg, bg)
	return &ContrastResult{
		Foreground: fgCat + "-" + fgShade,
		Background: bgCat + "-" + bgShade,
		Ratio:      math.Round(ratio*100) / 100,
		Minimum:    opts.MinRatio,
		Pass:       ratio >= opts.MinRatio,
	}
}

// SplitRef splits a "<category>.<shade>" reference. Shade names may not
// contain dots; category names may.
func SplitRef(ref string) (category, shade string) {
	i := strings.LastIndex(ref, ".")
	if i < 0 {
		return ref, ""
	}
	return ref[:i], ref[i+1:]
}

// formatRatio prints thresholds without trailing zeros (4.5, not 4.50).
func formatRatio(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
