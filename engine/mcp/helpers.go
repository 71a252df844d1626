package mcp

import (
	"github.com/compozy/monday-mcp/engine/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// newToolResult converts content blocks into an MCP tool result
func newToolResult(blocks []core.ContentBlock) *mcp.CallToolResult {
	if len(blocks) == 0 {
		return mcp.NewToolResultText("No content available")
	}
	content := make([]mcp.Content, 0, len(blocks))
	for _, block := range blocks {
		content = append(content, mcp.TextContent{
			Type: block.Type,
			Text: block.Text,
		})
	}
	return &mcp.CallToolResult{Content: content}
}

// arguments returns the request arguments as a mapping, never nil
func arguments(req mcp.CallToolRequest) map[string]any {
	if args := req.GetArguments(); args != nil {
		return args
	}
	return map[string]any{}
}
