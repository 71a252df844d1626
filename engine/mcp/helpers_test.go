package mcp

import (
	"testing"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolResult(t *testing.T) {
	t.Run("Should handle empty content", func(t *testing.T) {
		result := newToolResult(nil)
		require.NotNil(t, result)
		assert.Len(t, result.Content, 1)
		textContent, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "No content available", textContent.Text)
	})
	t.Run("Should keep block order", func(t *testing.T) {
		result := newToolResult([]core.ContentBlock{core.Text("first"), core.Text("second")})
		require.Len(t, result.Content, 2)
		first, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "text", first.Type)
		assert.Equal(t, "first", first.Text)
		second, ok := result.Content[1].(mcp.TextContent)
		require.True(t, ok)
		assert.Equal(t, "second", second.Text)
		assert.False(t, result.IsError)
	})
}

func TestArguments(t *testing.T) {
	t.Run("Should return an empty mapping when arguments are absent", func(t *testing.T) {
		var req mcp.CallToolRequest
		args := arguments(req)
		assert.NotNil(t, args)
		assert.Empty(t, args)
	})
	t.Run("Should return the request arguments", func(t *testing.T) {
		var req mcp.CallToolRequest
		req.Params.Arguments = map[string]any{"boardId": "1"}
		assert.Equal(t, "1", arguments(req)["boardId"])
	})
}
