package normalize

import (
	"testing"

	"github.com/compozy/monday-mcp/engine/query"
	"github.com/compozy/monday-mcp/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestGetItemFiles(t *testing.T) {
	logger.Disable()
	defer logger.Enable()
	n := New("https://acme.monday.com")
	params := &query.ItemFilesParams{ItemID: "42"}

	t.Run("Should report a missing item", func(t *testing.T) {
		blocks, err := n.GetItemFiles(parse(t, `{"data": {"items": []}}`), params)
		assert.Equal(t, "No items found with ID 42.", single(t, blocks, err))
	})
	t.Run("Should skip a malformed file column and keep the assets", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{
			"name": "Contract",
			"column_values": [
				{"id": "files", "column": {"title": "Files"}, "type": "file", "value": "{not json", "text": ""}
			],
			"assets": [
				{"id": "1", "name": "scan.pdf", "url": "https://files/scan.pdf", "public_url": "",
				 "file_extension": ".pdf", "file_size": 2048, "created_at": "2024-01-01"}
			]
		}]}}`)
		blocks, err := n.GetItemFiles(resp, params)
		text := single(t, blocks, err)
		assert.Contains(t, text, "Files attached to item 42 (Contract):")
		assert.Contains(t, text, "ASSETS:\nAsset Name: scan.pdf")
		assert.Contains(t, text, "Size: 2048 bytes")
		assert.NotContains(t, text, "FILES IN COLUMNS")
		assert.NotContains(t, text, "Public URL")
	})
	t.Run("Should list files referenced by file columns", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{
			"name": "Contract",
			"column_values": [
				{"id": "status", "column": {"title": "Status"}, "type": "status", "value": "{\"index\":1}", "text": "Done"},
				{"id": "files", "column": {"title": "Files"}, "type": "file",
				 "value": "{\"files\":[{\"name\":\"a.png\",\"url\":\"https://files/a.png\",\"assetId\":7,\"isImage\":\"true\"}]}"}
			],
			"assets": []
		}]}}`)
		blocks, err := n.GetItemFiles(resp, params)
		text := single(t, blocks, err)
		assert.Contains(t, text, "FILES IN COLUMNS:\nFile Name: a.png\nURL: https://files/a.png\nColumn: Files")
		assert.NotContains(t, text, "ASSETS:")
	})
	t.Run("Should fall back to the column id without a column title", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{
			"name": "Contract",
			"column_values": [{"id": "files_1", "type": "file",
				"value": "{\"files\":[{\"name\":\"b.pdf\",\"url\":\"https://files/b.pdf\"}]}"}]
		}]}}`)
		blocks, err := n.GetItemFiles(resp, params)
		assert.Contains(t, single(t, blocks, err), "Column: files_1")
	})
	t.Run("Should report no files when neither source has any", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{
			"name": "Contract",
			"column_values": [{"id": "files", "column": {"title": "Files"}, "type": "file", "value": "{}"}],
			"assets": []
		}]}}`)
		blocks, err := n.GetItemFiles(resp, params)
		assert.Equal(t, "No files found for item 42.", single(t, blocks, err))
	})
	t.Run("Should report no files for a column with a null value", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{
			"name": "Contract",
			"column_values": [{"id": "files", "column": {"title": "Files"}, "type": "file", "value": null}]
		}]}}`)
		blocks, err := n.GetItemFiles(resp, params)
		assert.Equal(t, "No files found for item 42.", single(t, blocks, err))
	})
}

func TestGetUpdateFiles(t *testing.T) {
	n := New("https://acme.monday.com")
	params := &query.UpdateFilesParams{UpdateID: "900"}

	t.Run("Should report a missing update", func(t *testing.T) {
		blocks, err := n.GetUpdateFiles(parse(t, `{"data": {"updates": []}}`), params)
		assert.Equal(t, "No update found with ID 900.", single(t, blocks, err))
	})
	t.Run("Should report an update without assets", func(t *testing.T) {
		resp := parse(t, `{"data": {"updates": [{"id": "900", "body": "hi", "assets": []}]}}`)
		blocks, err := n.GetUpdateFiles(resp, params)
		assert.Equal(t, "No files found for update 900.", single(t, blocks, err))
	})
	t.Run("Should render every asset", func(t *testing.T) {
		resp := parse(t, `{"data": {"updates": [{"id": "900", "assets": [
			{"id": "1", "name": "a.txt", "url": "u1", "public_url": "p1", "file_extension": ".txt", "file_size": 1, "created_at": "c1"},
			{"id": "2", "name": "b.txt", "url": "u2", "file_extension": ".txt", "file_size": 2, "created_at": "c2"}
		]}]}}`)
		blocks, err := n.GetUpdateFiles(resp, params)
		text := single(t, blocks, err)
		assert.Contains(t, text, "Files attached to update 900:")
		assert.Contains(t, text, "Asset Name: a.txt\nURL: u1\nPublic URL: p1\n")
		assert.Contains(t, text, "Asset Name: b.txt\nURL: u2\nType: .txt")
	})
}
