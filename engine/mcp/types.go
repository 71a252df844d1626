package mcp

import (
	"context"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// Invoker is the tool surface the server exposes
type Invoker interface {
	ListTools() []mcp.Tool
	Invoke(ctx context.Context, name string, args map[string]any) ([]core.ContentBlock, error)
}
