package normalize

import (
	"fmt"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/query"
)

// CreateItem renders monday-create-item. Sub-items live on their own board,
// so the link uses the board returned by create_subitem when present.
func (n *Normalizer) CreateItem(resp core.Response, p *query.CreateItemParams) ([]core.ContentBlock, error) {
	key := "create_item"
	if p.IsSubitem() {
		key = "create_subitem"
	}
	item, err := decodeOne[Item](field(resp, key))
	if err != nil {
		return nil, err
	}
	if item == nil || item.ID == "" {
		return core.Texts("Failed to create Monday.com item."), nil
	}

	boardID := p.BoardID
	if item.Board != nil && item.Board.ID != "" {
		boardID = item.Board.ID
	}
	kind := "item"
	if p.IsSubitem() {
		kind = "sub-item"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Created Monday.com %s successfully!\n", kind)
	fmt.Fprintf(&sb, "Name: %s\nID: %s\n", item.Name, item.ID)
	if p.IsSubitem() {
		fmt.Fprintf(&sb, "Parent Item ID: %s\n", p.ParentItemID)
	}
	fmt.Fprintf(&sb, "URL: %s", n.link("boards", boardID, "pulses", item.ID))
	return core.Texts(sb.String()), nil
}

// UpdateItem renders monday-update-item
func (n *Normalizer) UpdateItem(resp core.Response, p *query.UpdateItemParams) ([]core.ContentBlock, error) {
	item, err := decodeOne[Item](field(resp, "change_multiple_column_values"))
	if err != nil {
		return nil, err
	}
	if item == nil || item.ID == "" {
		return core.Texts(fmt.Sprintf("Failed to update Monday.com item %s.", p.ItemID)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Updated Monday.com item %s (ID: %s).\n", item.Name, item.ID)
	writeColumnValues(&sb, item.ColumnValues, "")
	return core.Texts(strings.TrimRight(sb.String(), "\n")), nil
}

// CreateUpdate renders monday-create-update
func (n *Normalizer) CreateUpdate(resp core.Response, p *query.CreateUpdateParams) ([]core.ContentBlock, error) {
	update, err := decodeOne[Update](field(resp, "create_update"))
	if err != nil {
		return nil, err
	}
	if update == nil || update.ID == "" {
		return core.Texts(fmt.Sprintf("Failed to create update on item %s.", p.ItemID)), nil
	}
	return core.Texts(fmt.Sprintf("Created new update on Monday.com item %s.\nUpdate ID: %s\nCreated: %s\nBody: %s",
		p.ItemID, update.ID, update.CreatedAt, update.Body)), nil
}

// ListItemsInGroups renders monday-list-items-in-groups. The page comes from
// boards[0].items_page on the first call and next_items_page afterwards.
func (n *Normalizer) ListItemsInGroups(resp core.Response, p *query.ListItemsInGroupsParams) ([]core.ContentBlock, error) {
	var page *Page
	if p.Cursor != "" {
		next, err := decodeOne[Page](field(resp, "next_items_page"))
		if err != nil {
			return nil, err
		}
		page = next
	} else {
		b, err := board(resp)
		if err != nil {
			return nil, err
		}
		if b != nil {
			page = b.ItemsPage
		}
	}

	groups := strings.Join(p.GroupIDs, ", ")
	if page == nil || len(page.Items) == 0 {
		return core.Texts(fmt.Sprintf("No items found in groups %s of board %s.", groups, p.BoardID)), nil
	}

	header := fmt.Sprintf("Items in groups %s of Monday.com board %s:", groups, p.BoardID)
	blocks := paragraphs(header, page.Items, func(sb *strings.Builder, item Item) {
		fmt.Fprintf(sb, "Item ID: %s\nName: %s\n", item.ID, item.Name)
		if item.Group != nil {
			fmt.Fprintf(sb, "Group: %s (%s)\n", item.Group.Title, item.Group.ID)
		}
		writeColumnValues(sb, item.ColumnValues, "")
	})
	if page.Cursor != "" {
		blocks[0].Text += fmt.Sprintf("\n\nMore items available. Next cursor: %s", page.Cursor)
	}
	return blocks, nil
}

// ListSubitems renders monday-list-subitems-in-items
func (n *Normalizer) ListSubitems(resp core.Response, p *query.ListSubitemsParams) ([]core.ContentBlock, error) {
	items, err := decodeList[Item](field(resp, "items"))
	if err != nil {
		return nil, err
	}

	ids := strings.Join(p.ItemIDs, ", ")
	total := 0
	for _, item := range items {
		total += len(item.Subitems)
	}
	if total == 0 {
		return core.Texts(fmt.Sprintf("No sub-items found for items %s.", ids)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sub-items of Monday.com items %s:\n\n", ids)
	for _, item := range items {
		fmt.Fprintf(&sb, "Item %s (ID: %s):\n", item.Name, item.ID)
		if len(item.Subitems) == 0 {
			sb.WriteString("  No sub-items\n\n")
			continue
		}
		for _, sub := range item.Subitems {
			fmt.Fprintf(&sb, "  Sub-item ID: %s\n  Name: %s\n", sub.ID, sub.Name)
			if sub.Board != nil && sub.Board.ID != "" {
				fmt.Fprintf(&sb, "  Board ID: %s\n", sub.Board.ID)
			}
			writeColumnValues(&sb, sub.ColumnValues, "  ")
			sb.WriteString("\n")
		}
	}
	return core.Texts(strings.TrimRight(sb.String(), "\n")), nil
}

// GetItemUpdates renders monday-get-item-updates
func (n *Normalizer) GetItemUpdates(resp core.Response, p *query.ItemUpdatesParams) ([]core.ContentBlock, error) {
	items, err := decodeList[Item](field(resp, "items"))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return core.Texts(fmt.Sprintf("No items found with ID %s.", p.ItemID)), nil
	}
	item := items[0]
	if len(item.Updates) == 0 {
		return core.Texts(fmt.Sprintf("No updates found for item %s.", p.ItemID)), nil
	}

	header := fmt.Sprintf("Updates for Monday.com item %s (ID: %s):", item.Name, item.ID)
	return paragraphs(header, item.Updates, func(sb *strings.Builder, u Update) {
		body := u.TextBody
		if body == "" {
			body = u.Body
		}
		fmt.Fprintf(sb, "Update ID: %s\nCreator: %s\nCreated: %s\nBody: %s\n", u.ID, userLabel(u.Creator), u.CreatedAt, body)
	}), nil
}

// writeColumnValues lists the non-empty column texts of an item
func writeColumnValues(sb *strings.Builder, values []ColumnValue, indent string) {
	written := false
	for _, cv := range values {
		if cv.Text == "" {
			continue
		}
		if !written {
			sb.WriteString(indent + "Columns:\n")
			written = true
		}
		fmt.Fprintf(sb, "%s  %s: %s\n", indent, cv.ID, cv.Text)
	}
}
