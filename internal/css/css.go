// Package css renders a palette as a stylesheet of CSS custom properties.
//
// The output is a derived build artefact: it is regenerated in full on every
// run and carries a header telling readers not to edit it by hand.
//
// Design: Generate is pure and deterministic, so the same palette always
// yields byte-identical output. This is what makes Check meaningful - a
// stylesheet that differs from fresh output is stale, never just reordered.
package css

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/jpl-au/palette/internal/diff"
	"github.com/jpl-au/palette/internal/palette"
)

// DefaultSource names the palette file in the generated header.
const DefaultSource = "palette.jsonc"

// ErrStale is returned by callers when an existing stylesheet does not match
// freshly generated output.
var ErrStale = errors.New("stylesheet is out of date")

// Options configures stylesheet generation.
type Options struct {
	// Source is the palette file name shown in the header comment.
	Source string
}

// Generate renders p as a :root block of --color-<category>-<shade>
// declarations, in palette order.
func Generate(p *palette.Palette, opts Options) []byte {
	src := opts.Source
	if src == "" {
		src = DefaultSource
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "/* CSS variables generated automatically from %s */\n", src)
	b.WriteString("/* Do not edit manually - run `palette generate` */\n\n")
	b.WriteString(":root {\n")

	p.Each(func(c *palette.Category) {
		fmt.Fprintf(&b, "\n  /* %s colors */\n", Title(c.Name))
		if !c.IsObject() {
			return
		}
		for _, e := range c.Entries() {
			fmt.Fprintf(&b, "  %s: %s;\n", VarName(e.Category, e.Shade), e.Value)
		}
	})

	b.WriteString("}\n")
	return b.Bytes()
}

// VarName returns the custom property name for a category shade.
func VarName(category, shade string) string {
	return "--color-" + category + "-" + shade
}

// Title upper-cases the first letter of s, leaving the rest untouched.
func Title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Write overwrites path with css, creating parent directories as needed.
func Write(path string, css []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, css, 0644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}

// Check compares the stylesheet at path with css. A missing file counts as
// stale and is diffed against empty content.
func Check(path string, css []byte) (diff.Result, error) {
	existing, err := os.ReadFile(path)
	missing := errors.Is(err, fs.ErrNotExist)
	if err != nil && !missing {
		return diff.Result{}, fmt.Errorf("reading stylesheet: %w", err)
	}
	label := path
	if missing {
		label = path + " (missing)"
	}
	r := diff.Compute(string(existing), string(css), label, "generated")
	if missing {
		r.Changed = true
	}
	return r, nil
}
