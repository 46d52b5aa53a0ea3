// Package service runs the palette operations shared by the CLI and the MCP
// server: load the palette, then generate a stylesheet or verify content.
//
// Every call reloads the palette from disk. Nothing is cached between calls,
// so a long-running MCP server always sees the file as it is now.
package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jpl-au/palette/internal/css"
	"github.com/jpl-au/palette/internal/diff"
	"github.com/jpl-au/palette/internal/palette"
	"github.com/jpl-au/palette/internal/verify"
)

// Mode selects what Generate does with the rendered stylesheet.
type Mode int

const (
	// ModeWrite overwrites the output file.
	ModeWrite Mode = iota
	// ModeCheck compares against the output file without writing.
	ModeCheck
	// ModeRender only returns the stylesheet.
	ModeRender
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Palette string // palette file to read
	Output  string // stylesheet path
	Mode    Mode
}

// GenerateResult describes a completed Generate call.
type GenerateResult struct {
	Output     string   `json:"output,omitempty"`
	Categories []string `json:"categories"`
	Written    bool     `json:"written"`
	Stale      bool     `json:"stale,omitempty"`

	CSS  []byte      `json:"-"`
	Diff diff.Result `json:"-"`
}

// Generate loads the palette and renders it as CSS. In ModeCheck a stale or
// missing stylesheet is reported through GenerateResult.Stale, not an error.
// The output file is only touched in ModeWrite and only after the palette
// loaded successfully.
func Generate(ctx context.Context, opts GenerateOptions) (GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return GenerateResult{}, err
	}

	p, err := palette.Load(opts.Palette)
	if err != nil {
		return GenerateResult{}, err
	}

	out := css.Generate(p, css.Options{Source: filepath.Base(opts.Palette)})
	res := GenerateResult{
		Output:     opts.Output,
		Categories: p.Categories(),
		CSS:        out,
	}

	switch opts.Mode {
	case ModeWrite:
		if err := css.Write(opts.Output, out); err != nil {
			return res, err
		}
		res.Written = true
	case ModeCheck:
		d, err := css.Check(opts.Output, out)
		if err != nil {
			return res, err
		}
		res.Diff = d
		res.Stale = d.Changed
	case ModeRender:
		res.Output = ""
	default:
		return res, fmt.Errorf("unknown generate mode %d", opts.Mode)
	}
	return res, nil
}

// VerifyOptions configures Verify.
type VerifyOptions struct {
	Palette string
	Check   verify.Options
}

// Verify loads the palette and runs every content check.
func Verify(ctx context.Context, opts VerifyOptions) (verify.Report, error) {
	if err := ctx.Err(); err != nil {
		return verify.Report{}, err
	}

	p, err := palette.Load(opts.Palette)
	if err != nil {
		return verify.Report{}, err
	}
	return verify.Check(p, opts.Check), nil
}
