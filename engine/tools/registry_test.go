package tools

import (
	"testing"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// sampleArguments holds a valid invocation for every tool
var sampleArguments = map[string]map[string]any{
	ListBoards:          {"limit": float64(10)},
	GetBoardGroups:      {"boardId": "1"},
	GetBoardColumns:     {"boardId": "1"},
	CreateItem:          {"boardId": "1", "itemTitle": `Say "hi"`, "groupId": "topics", "columnValues": map[string]any{"status": map[string]any{"label": "Done"}}},
	UpdateItem:          {"boardId": "1", "itemId": "2", "columnValues": map[string]any{"text": "x"}},
	CreateUpdate:        {"itemId": "2", "updateText": "line one\nline two"},
	ListItemsInGroups:   {"boardId": "1", "groupIds": []any{"g1", "g2"}},
	ListSubitemsInItems: {"itemIds": []any{"1", "2"}},
	GetItemUpdates:      {"itemId": "2"},
	GetDocs:             {"folder_id": "7"},
	GetDocContent:       {"doc_id": "3"},
	CreateDoc:           {"title": "Plan", "content": `He said "hi"`},
	AddDocBlock:         {"doc_id": "3", "block_type": "heading", "content": "Intro", "after_block_id": "b1"},
	GetItemFiles:        {"itemId": "2"},
	GetUpdateFiles:      {"updateId": "9"},
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry(normalize.New("https://acme.monday.com"))

	t.Run("Should register every tool once under its own name", func(t *testing.T) {
		names := registry.Names()
		assert.Len(t, names, len(sampleArguments))
		seen := map[string]bool{}
		for _, name := range names {
			assert.False(t, seen[name], "duplicate tool %s", name)
			seen[name] = true
			tool, ok := registry.Lookup(name)
			require.True(t, ok)
			assert.Equal(t, name, tool.Definition().Name)
		}
	})

	t.Run("Should not find unknown tools", func(t *testing.T) {
		_, ok := registry.Lookup("monday-delete-board")
		assert.False(t, ok)
		_, ok = registry.Lookup("list-boards")
		assert.False(t, ok)
	})

	t.Run("Should declare object schemas whose required names are properties", func(t *testing.T) {
		for _, def := range registry.Definitions() {
			assert.Equal(t, "object", def.InputSchema.Type, def.Name)
			assert.NotEmpty(t, def.Description, def.Name)
			for _, name := range def.InputSchema.Required {
				assert.Contains(t, def.InputSchema.Properties, name, def.Name)
			}
		}
	})

	t.Run("Should build a parseable document for every tool", func(t *testing.T) {
		for _, name := range registry.Names() {
			tool, _ := registry.Lookup(name)
			call, err := tool.Prepare(sampleArguments[name])
			require.NoError(t, err, name)
			_, parseErr := parser.ParseQuery(&ast.Source{Name: name, Input: call.Document.Text})
			assert.Nil(t, parseErr, "%s: %s", name, call.Document.Text)
		}
	})

	t.Run("Should mark mutations as writes", func(t *testing.T) {
		for _, name := range []string{CreateItem, UpdateItem, CreateUpdate, CreateDoc, AddDocBlock} {
			tool, _ := registry.Lookup(name)
			assert.False(t, Describe(tool.Definition()).ReadOnly, name)
			call, err := tool.Prepare(sampleArguments[name])
			require.NoError(t, err)
			assert.Equal(t, core.OperationMutation, call.Document.Kind, name)
		}
	})

	t.Run("Should bind the normalizer to the decoded arguments", func(t *testing.T) {
		tool, _ := registry.Lookup(GetDocContent)
		call, err := tool.Prepare(map[string]any{"doc_id": float64(31)})
		require.NoError(t, err)
		assert.Contains(t, call.Document.Text, "docs(ids: [31])")
		blocks, err := call.Normalize(core.Response{"data": map[string]any{"docs": []any{}}})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "Document with ID 31 not found.", blocks[0].Text)
	})

	t.Run("Should reject create-item with both group and parent", func(t *testing.T) {
		tool, _ := registry.Lookup(CreateItem)
		_, err := tool.Prepare(map[string]any{
			"boardId": "1", "itemTitle": "x", "groupId": "g", "parentItemId": "5",
		})
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeInvalidArguments))
	})

	t.Run("Should reject arguments of the wrong type", func(t *testing.T) {
		tool, _ := registry.Lookup(ListItemsInGroups)
		_, err := tool.Prepare(map[string]any{"boardId": "1", "groupIds": map[string]any{"a": 1}})
		require.Error(t, err)
		assert.True(t, core.IsCode(err, core.ErrorCodeInvalidArguments))
	})
}

func TestDecodeArguments(t *testing.T) {
	t.Run("Should accept numbers for ids and strings for limits", func(t *testing.T) {
		var params struct {
			ItemID string   `mapstructure:"itemId"`
			Limit  int      `mapstructure:"limit"`
			IDs    []string `mapstructure:"ids"`
		}
		err := DecodeArguments(map[string]any{
			"itemId": float64(123456789),
			"limit":  "5",
			"ids":    []any{float64(1), "2"},
		}, &params)
		require.NoError(t, err)
		assert.Equal(t, "123456789", params.ItemID)
		assert.Equal(t, 5, params.Limit)
		assert.Equal(t, []string{"1", "2"}, params.IDs)
	})
}
