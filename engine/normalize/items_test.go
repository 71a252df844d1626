package normalize

import (
	"testing"

	"github.com/compozy/monday-mcp/engine/query"
	"github.com/stretchr/testify/assert"
)

func TestCreateItem(t *testing.T) {
	n := New("https://acme.monday.com")

	t.Run("Should link a created item to its board", func(t *testing.T) {
		resp := parse(t, `{"data": {"create_item": {"id": "77", "name": "Task"}}}`)
		blocks, err := n.CreateItem(resp, &query.CreateItemParams{BoardID: "10", GroupID: "topics"})
		text := single(t, blocks, err)
		assert.Contains(t, text, "Created Monday.com item successfully!")
		assert.Contains(t, text, "URL: https://acme.monday.com/boards/10/pulses/77")
	})
	t.Run("Should link a sub-item to the sub-items board", func(t *testing.T) {
		resp := parse(t, `{"data": {"create_subitem": {"id": "78", "name": "Step", "board": {"id": 11}}}}`)
		blocks, err := n.CreateItem(resp, &query.CreateItemParams{BoardID: "10", ParentItemID: "77"})
		text := single(t, blocks, err)
		assert.Contains(t, text, "Created Monday.com sub-item successfully!")
		assert.Contains(t, text, "Parent Item ID: 77")
		assert.Contains(t, text, "URL: https://acme.monday.com/boards/11/pulses/78")
	})
	t.Run("Should read the item key when the parent is blank", func(t *testing.T) {
		resp := parse(t, `{"data": {"create_item": {"id": "79", "name": "Task"}}}`)
		blocks, err := n.CreateItem(resp, &query.CreateItemParams{BoardID: "10", GroupID: "topics", ParentItemID: "  "})
		text := single(t, blocks, err)
		assert.Contains(t, text, "Created Monday.com item successfully!")
		assert.NotContains(t, text, "Parent Item ID")
		assert.Contains(t, text, "URL: https://acme.monday.com/boards/10/pulses/79")
	})
	t.Run("Should report a failed creation", func(t *testing.T) {
		blocks, err := n.CreateItem(parse(t, `{"data": {"create_item": null}}`),
			&query.CreateItemParams{BoardID: "10", GroupID: "topics"})
		assert.Equal(t, "Failed to create Monday.com item.", single(t, blocks, err))
	})
}

func TestUpdateItem(t *testing.T) {
	n := New("https://acme.monday.com")

	t.Run("Should list the non-empty column values", func(t *testing.T) {
		resp := parse(t, `{"data": {"change_multiple_column_values": {"id": "77", "name": "Task",
			"column_values": [{"id": "status", "text": "Done"}, {"id": "date", "text": ""}]}}}`)
		blocks, err := n.UpdateItem(resp, &query.UpdateItemParams{ItemID: "77"})
		text := single(t, blocks, err)
		assert.Equal(t, "Updated Monday.com item Task (ID: 77).\nColumns:\n  status: Done", text)
	})
	t.Run("Should report a failed update", func(t *testing.T) {
		blocks, err := n.UpdateItem(parse(t, `{"data": {}}`), &query.UpdateItemParams{ItemID: "77"})
		assert.Equal(t, "Failed to update Monday.com item 77.", single(t, blocks, err))
	})
}

func TestCreateUpdate(t *testing.T) {
	n := New("https://acme.monday.com")

	t.Run("Should render the created update", func(t *testing.T) {
		resp := parse(t, `{"data": {"create_update": {"id": "5", "body": "On it", "created_at": "2024-02-02"}}}`)
		blocks, err := n.CreateUpdate(resp, &query.CreateUpdateParams{ItemID: "77"})
		text := single(t, blocks, err)
		assert.Equal(t, "Created new update on Monday.com item 77.\nUpdate ID: 5\nCreated: 2024-02-02\nBody: On it", text)
	})
}

func TestListItemsInGroups(t *testing.T) {
	n := New("https://acme.monday.com")
	params := &query.ListItemsInGroupsParams{BoardID: "10", GroupIDs: []string{"g1", "g2"}}

	t.Run("Should report empty groups", func(t *testing.T) {
		resp := parse(t, `{"data": {"boards": [{"items_page": {"cursor": null, "items": []}}]}}`)
		blocks, err := n.ListItemsInGroups(resp, params)
		assert.Equal(t, "No items found in groups g1, g2 of board 10.", single(t, blocks, err))
	})
	t.Run("Should report a missing board as empty", func(t *testing.T) {
		blocks, err := n.ListItemsInGroups(parse(t, `{"data": {"boards": []}}`), params)
		assert.Equal(t, "No items found in groups g1, g2 of board 10.", single(t, blocks, err))
	})
	t.Run("Should render items and the next cursor", func(t *testing.T) {
		resp := parse(t, `{"data": {"boards": [{"items_page": {"cursor": "abc", "items": [
			{"id": "1", "name": "One", "group": {"id": "g1", "title": "Todo"}, "column_values": [{"id": "status", "text": "Working"}]},
			{"id": "2", "name": "Two", "group": {"id": "g2", "title": "Done"}, "column_values": []}
		]}}]}}`)
		blocks, err := n.ListItemsInGroups(resp, params)
		text := single(t, blocks, err)
		assert.Contains(t, text, "Item ID: 1\nName: One\nGroup: Todo (g1)\nColumns:\n  status: Working")
		assert.Contains(t, text, "Item ID: 2\nName: Two\nGroup: Done (g2)")
		assert.Contains(t, text, "Next cursor: abc")
	})
	t.Run("Should read next_items_page when paging with a cursor", func(t *testing.T) {
		paged := &query.ListItemsInGroupsParams{BoardID: "10", GroupIDs: []string{"g1"}, Cursor: "abc"}
		resp := parse(t, `{"data": {"next_items_page": {"cursor": null, "items": [{"id": "3", "name": "Three"}]}}}`)
		blocks, err := n.ListItemsInGroups(resp, paged)
		text := single(t, blocks, err)
		assert.Contains(t, text, "Item ID: 3")
		assert.NotContains(t, text, "Next cursor")
	})
}

func TestListSubitems(t *testing.T) {
	n := New("https://acme.monday.com")
	params := &query.ListSubitemsParams{ItemIDs: []string{"1", "2"}}

	t.Run("Should report items without sub-items", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{"id": "1", "name": "One", "subitems": []}]}}`)
		blocks, err := n.ListSubitems(resp, params)
		assert.Equal(t, "No sub-items found for items 1, 2.", single(t, blocks, err))
	})
	t.Run("Should group sub-items under their parent", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [
			{"id": "1", "name": "One", "subitems": [{"id": "11", "name": "Child", "board": {"id": "99"},
				"column_values": [{"id": "status", "text": "Done"}]}]},
			{"id": "2", "name": "Two", "subitems": null}
		]}}`)
		blocks, err := n.ListSubitems(resp, params)
		text := single(t, blocks, err)
		assert.Contains(t, text, "Item One (ID: 1):\n  Sub-item ID: 11\n  Name: Child\n  Board ID: 99\n  Columns:\n    status: Done")
		assert.Contains(t, text, "Item Two (ID: 2):\n  No sub-items")
	})
}

func TestGetItemUpdates(t *testing.T) {
	n := New("https://acme.monday.com")
	params := &query.ItemUpdatesParams{ItemID: "1"}

	t.Run("Should report a missing item", func(t *testing.T) {
		blocks, err := n.GetItemUpdates(parse(t, `{"data": {"items": []}}`), params)
		assert.Equal(t, "No items found with ID 1.", single(t, blocks, err))
	})
	t.Run("Should report an item without updates", func(t *testing.T) {
		blocks, err := n.GetItemUpdates(parse(t, `{"data": {"items": [{"id": "1", "name": "One", "updates": []}]}}`), params)
		assert.Equal(t, "No updates found for item 1.", single(t, blocks, err))
	})
	t.Run("Should prefer the plain text body", func(t *testing.T) {
		resp := parse(t, `{"data": {"items": [{"id": "1", "name": "One", "updates": [
			{"id": "5", "body": "<p>Hi</p>", "text_body": "Hi", "created_at": "c", "creator": {"id": 3, "name": "Ana"}},
			{"id": "6", "body": "Raw", "text_body": "", "created_at": "d", "creator": null}
		]}]}}`)
		blocks, err := n.GetItemUpdates(resp, params)
		text := single(t, blocks, err)
		assert.Contains(t, text, "Update ID: 5\nCreator: Ana (3)\nCreated: c\nBody: Hi")
		assert.Contains(t, text, "Update ID: 6\nCreator: Unknown\nCreated: d\nBody: Raw")
	})
}
