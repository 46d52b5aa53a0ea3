// tools_palette.go implements the palette_verify and palette_generate tools.
//
// Content issues are returned as part of a successful result, matching the
// CLI where issues never change the exit status. Only load and write
// failures become tool errors.

package mcp

import (
	"context"

	"github.com/jpl-au/palette/internal/log"
	"github.com/jpl-au/palette/internal/service"
	"github.com/jpl-au/palette/internal/verify"
	"github.com/mark3labs/mcp-go/mcp"
)

// verifyPalette handles palette_verify tool calls.
func (h *handlers) verifyPalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := getString(req, "palette", h.defaults.Palette)
	opts := verify.Options{
		Foreground: getString(req, "foreground", h.defaults.Foreground),
		Background: getString(req, "background", h.defaults.Background),
		MinRatio:   getFloat(req, "min_ratio", h.defaults.MinRatio),
	}

	r, err := service.Verify(ctx, service.VerifyOptions{Palette: path, Check: opts})

	log.Event("mcp:palette_verify", "verify").
		Input(path).
		Detail("issues", len(r.Issues)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(r)
}

// generateStylesheet handles palette_generate tool calls.
func (h *handlers) generateStylesheet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := service.GenerateOptions{
		Palette: getString(req, "palette", h.defaults.Palette),
		Output:  getString(req, "output", h.defaults.Output),
		Mode:    service.ModeWrite,
	}
	action := "write"
	switch {
	case getBool(req, "check", false):
		opts.Mode = service.ModeCheck
		action = "check"
	case getBool(req, "dry_run", false):
		opts.Mode = service.ModeRender
		action = "render"
	}

	res, err := service.Generate(ctx, opts)

	l := log.Event("mcp:palette_generate", action).Input(opts.Palette)
	if res.Written {
		l.Output(res.Output)
	}
	l.Detail("categories", len(res.Categories)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	switch opts.Mode {
	case service.ModeRender:
		return mcp.NewToolResultText(string(res.CSS)), nil
	case service.ModeCheck:
		return jsonResult(map[string]any{
			"output": res.Output,
			"stale":  res.Stale,
			"diff":   res.Diff.Format(false),
		})
	}
	return jsonResult(res)
}
