// serve.go implements "palette serve", an MCP server over stdio.
//
// Paths and contrast settings are resolved once at startup with the same
// precedence as the other commands; each tool call can still override them.

package cmd

import (
	"github.com/jpl-au/palette/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

Tools: palette_verify, palette_generate, palette_config, palette_guide.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return mcp.Serve(mcp.Defaults{
				Palette:    PalettePath(cfg),
				Output:     OutputPath(cfg, ""),
				Foreground: cfg.Foreground(),
				Background: cfg.Background(),
				MinRatio:   cfg.MinRatio(),
			})
		},
	}
}
