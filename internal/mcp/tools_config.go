// tools_config.go implements the read-only palette_config tool.
//
// Design: Only effective values are exposed. Changing configuration stays a
// CLI operation so an LLM cannot redirect where stylesheets are written.

package mcp

import (
	"context"

	"github.com/jpl-au/palette/internal/config"
	"github.com/jpl-au/palette/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles palette_config tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:palette_config", "get").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:palette_config", "list").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:palette_config", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{key: v})
}
