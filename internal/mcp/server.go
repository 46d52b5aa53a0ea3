// Package mcp implements the Model Context Protocol server, exposing palette
// generation and verification to LLM tooling over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Defaults holds the paths and contrast references resolved by the CLI
// (flags, environment, config). Tool arguments override them per call.
type Defaults struct {
	Palette    string
	Output     string
	Foreground string
	Background string
	MinRatio   float64
}

// Serve starts the MCP server over stdio.
func Serve(d Defaults) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(d)

	slog.Info("palette MCP server ready", "version", Version, "transport", "stdio", "palette", d.Palette)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with all palette tools registered.
func NewServer(d Defaults) *server.MCPServer {
	s := server.NewMCPServer(
		"palette",
		Version,
		server.WithToolCapabilities(true),
	)
	registerTools(s, &handlers{defaults: d})
	return s
}

// handlers provides MCP request handlers. The palette is reloaded from disk
// on every call.
type handlers struct {
	defaults Defaults
}

// registerTools exposes palette operations as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("palette_verify",
			mcp.WithDescription("Verify the colour palette: invalid hex codes, duplicate values and WCAG contrast of the reference pair"),
			mcp.WithString("palette", mcp.Description("Palette file (default: configured path)")),
			mcp.WithString("foreground", mcp.Description("Contrast foreground as category.shade (default: purple.plum)")),
			mcp.WithString("background", mcp.Description("Contrast background as category.shade (default: gray.white)")),
			mcp.WithNumber("min_ratio", mcp.Description("Minimum contrast ratio (default: 4.5)")),
		),
		h.verifyPalette,
	)

	s.AddTool(
		mcp.NewTool("palette_generate",
			mcp.WithDescription("Generate the CSS custom properties stylesheet from the palette"),
			mcp.WithString("palette", mcp.Description("Palette file (default: configured path)")),
			mcp.WithString("output", mcp.Description("Stylesheet path (default: configured path)")),
			mcp.WithBoolean("dry_run", mcp.Description("Return the stylesheet without writing it")),
			mcp.WithBoolean("check", mcp.Description("Report whether the stylesheet is out of date without writing it")),
		),
		h.generateStylesheet,
	)

	s.AddTool(
		mcp.NewTool("palette_config",
			mcp.WithDescription("Show effective palette configuration values"),
			mcp.WithString("key", mcp.Description("Single key to show (default: all)")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("palette_guide",
			mcp.WithDescription("Read palette documentation"),
			mcp.WithString("topic", mcp.Description("Guide topic: format, generate, verify, config (default: overview)")),
		),
		h.getGuide,
	)
}
