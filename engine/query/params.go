package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
)

// Default page sizes, matching what the monday.com MCP tools have always used
const (
	DefaultBoardsLimit  = 100
	DefaultItemsLimit   = 25
	DefaultUpdatesLimit = 25
	DefaultDocsLimit    = 25
)

// ListBoardsParams are the arguments of monday-list-boards
type ListBoardsParams struct {
	Limit int `mapstructure:"limit"`
}

// BoardParams are the arguments of the board lookups (groups, columns)
type BoardParams struct {
	BoardID string `mapstructure:"boardId"`
}

// CreateItemParams are the arguments of monday-create-item
type CreateItemParams struct {
	BoardID      string `mapstructure:"boardId"`
	ItemTitle    string `mapstructure:"itemTitle"`
	GroupID      string `mapstructure:"groupId"`
	ParentItemID string `mapstructure:"parentItemId"`
	ColumnValues any    `mapstructure:"columnValues"`
}

// IsSubitem reports whether the item is created under a parent item
func (p *CreateItemParams) IsSubitem() bool {
	return strings.TrimSpace(p.ParentItemID) != ""
}

// Validate trims the placement ids and enforces that exactly one of groupId
// and parentItemId is set
func (p *CreateItemParams) Validate() error {
	p.GroupID = strings.TrimSpace(p.GroupID)
	p.ParentItemID = strings.TrimSpace(p.ParentItemID)
	hasGroup := p.GroupID != ""
	hasParent := p.ParentItemID != ""
	switch {
	case hasGroup && hasParent:
		return core.Errorf(core.ErrorCodeInvalidArguments,
			"groupId and parentItemId are mutually exclusive, set only one of them")
	case !hasGroup && !hasParent:
		return core.Errorf(core.ErrorCodeInvalidArguments,
			"either groupId or parentItemId must be set")
	}
	return nil
}

// UpdateItemParams are the arguments of monday-update-item
type UpdateItemParams struct {
	BoardID      string `mapstructure:"boardId"`
	ItemID       string `mapstructure:"itemId"`
	ColumnValues any    `mapstructure:"columnValues"`
}

// CreateUpdateParams are the arguments of monday-create-update
type CreateUpdateParams struct {
	ItemID     string `mapstructure:"itemId"`
	UpdateText string `mapstructure:"updateText"`
}

// ListItemsInGroupsParams are the arguments of monday-list-items-in-groups
type ListItemsInGroupsParams struct {
	BoardID  string   `mapstructure:"boardId"`
	GroupIDs []string `mapstructure:"groupIds"`
	Limit    int      `mapstructure:"limit"`
	Cursor   string   `mapstructure:"cursor"`
}

// ListSubitemsParams are the arguments of monday-list-subitems-in-items
type ListSubitemsParams struct {
	ItemIDs []string `mapstructure:"itemIds"`
}

// ItemUpdatesParams are the arguments of monday-get-item-updates
type ItemUpdatesParams struct {
	ItemID string `mapstructure:"itemId"`
	Limit  int    `mapstructure:"limit"`
}

// GetDocsParams are the arguments of monday-get-docs
type GetDocsParams struct {
	Limit    int    `mapstructure:"limit"`
	FolderID string `mapstructure:"folder_id"`
}

// DocContentParams are the arguments of monday-get-doc-content
type DocContentParams struct {
	DocID string `mapstructure:"doc_id"`
}

// CreateDocParams are the arguments of monday-create-doc
type CreateDocParams struct {
	Title    string `mapstructure:"title"`
	Content  string `mapstructure:"content"`
	FolderID string `mapstructure:"folder_id"`
}

// AddDocBlockParams are the arguments of monday-add-doc-block
type AddDocBlockParams struct {
	DocID        string `mapstructure:"doc_id"`
	BlockType    string `mapstructure:"block_type"`
	Content      string `mapstructure:"content"`
	AfterBlockID string `mapstructure:"after_block_id"`
}

// ItemFilesParams are the arguments of monday-get-item-files
type ItemFilesParams struct {
	ItemID string `mapstructure:"itemId"`
}

// UpdateFilesParams are the arguments of monday-get-update-files
type UpdateFilesParams struct {
	UpdateID string `mapstructure:"updateId"`
}

func limitOr(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

// columnValuesJSON serializes column values for the column_values argument.
// Maps are marshaled with sorted keys; strings are assumed to be JSON already.
func columnValuesJSON(values any) (string, error) {
	switch v := values.(type) {
	case nil:
		return "", nil
	case string:
		if strings.TrimSpace(v) == "" {
			return "", nil
		}
		if !json.Valid([]byte(v)) {
			return "", core.Errorf(core.ErrorCodeInvalidArguments, "columnValues is not valid JSON")
		}
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", core.NewError(fmt.Errorf("failed to encode columnValues: %w", err),
				core.ErrorCodeInvalidArguments, nil)
		}
		return string(data), nil
	}
}
