package query

// Documents for every monday.com tool. Each function requests exactly the
// fields its normalizer renders.

var (
	assetFields = []any{"id", "name", "url", "public_url", "file_extension", "file_size", "created_at"}
	itemFields  = []any{
		"id", "name",
		F("group").Select("id", "title"),
		F("column_values").Select("id", "text"),
	}
)

// ListBoards renders the board listing query
func ListBoards(p *ListBoardsParams) (*Document, error) {
	return Query().
		Field(F("boards", Int("limit", limitOr(p.Limit, DefaultBoardsLimit))).
			Select("id", "name", "description", "state", "board_kind", "workspace_id")).
		Build()
}

// GetBoardGroups renders the board groups query
func GetBoardGroups(p *BoardParams) (*Document, error) {
	return Query().
		Field(F("boards", ID("ids", p.BoardID)).
			Select("id", "name", F("groups").Select("id", "title", "color", "position", "archived"))).
		Build()
}

// GetBoardColumns renders the board columns query
func GetBoardColumns(p *BoardParams) (*Document, error) {
	return Query().
		Field(F("boards", ID("ids", p.BoardID)).
			Select("id", "name", F("columns").Select("id", "title", "type", "settings_str"))).
		Build()
}

// CreateItem renders create_item, or create_subitem when a parent item is given
func CreateItem(p *CreateItemParams) (*Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	columns, err := columnValuesJSON(p.ColumnValues)
	if err != nil {
		return nil, err
	}

	if p.IsSubitem() {
		return Mutation().
			Field(F("create_subitem",
				ID("parent_item_id", p.ParentItemID),
				String("item_name", p.ItemTitle),
				OptString("column_values", columns),
			).Select("id", "name", F("board").Select("id"))).
			Build()
	}

	return Mutation().
		Field(F("create_item",
			ID("board_id", p.BoardID),
			String("group_id", p.GroupID),
			String("item_name", p.ItemTitle),
			OptString("column_values", columns),
		).Select("id", "name")).
		Build()
}

// UpdateItem renders change_multiple_column_values
func UpdateItem(p *UpdateItemParams) (*Document, error) {
	columns, err := columnValuesJSON(p.ColumnValues)
	if err != nil {
		return nil, err
	}
	if columns == "" {
		columns = "{}"
	}
	return Mutation().
		Field(F("change_multiple_column_values",
			ID("board_id", p.BoardID),
			ID("item_id", p.ItemID),
			String("column_values", columns),
		).Select("id", "name", F("column_values").Select("id", "text"))).
		Build()
}

// CreateUpdate renders create_update (a comment on an item)
func CreateUpdate(p *CreateUpdateParams) (*Document, error) {
	return Mutation().
		Field(F("create_update",
			ID("item_id", p.ItemID),
			String("body", p.UpdateText),
		).Select("id", "body", "created_at")).
		Build()
}

// ListItemsInGroups renders the first items page filtered by group, or the
// next page when a cursor is given. Cursor pages carry no filter.
func ListItemsInGroups(p *ListItemsInGroupsParams) (*Document, error) {
	limit := limitOr(p.Limit, DefaultItemsLimit)
	page := func(f Field) Field {
		return f.Select("cursor", F("items").Select(itemFields...))
	}

	if p.Cursor != "" {
		return Query().
			Field(page(F("next_items_page", Int("limit", limit), String("cursor", p.Cursor)))).
			Build()
	}

	rule := Object(
		String("column_id", "group"),
		Strings("compare_value", p.GroupIDs),
		Enum("operator", "any_of"),
	)
	params := Object(Raw("rules", List(rule)))

	return Query().
		Field(F("boards", ID("ids", p.BoardID)).
			Select(page(F("items_page", Int("limit", limit), Raw("query_params", params))))).
		Build()
}

// ListSubitems renders the sub-items query for a set of items
func ListSubitems(p *ListSubitemsParams) (*Document, error) {
	return Query().
		Field(F("items", IDs("ids", p.ItemIDs)).
			Select("id", "name", F("subitems").Select(
				"id", "name",
				F("board").Select("id"),
				F("column_values").Select("id", "text"),
			))).
		Build()
}

// GetItemUpdates renders the updates query of an item
func GetItemUpdates(p *ItemUpdatesParams) (*Document, error) {
	return Query().
		Field(F("items", ID("ids", p.ItemID)).
			Select("id", "name", F("updates", Int("limit", limitOr(p.Limit, DefaultUpdatesLimit))).Select(
				"id", "body", "text_body", "created_at",
				F("creator").Select("id", "name"),
			))).
		Build()
}

// GetDocs renders the document listing, optionally scoped to a folder
func GetDocs(p *GetDocsParams) (*Document, error) {
	filter := ""
	if p.FolderID != "" {
		filter = Object(ID("folder_id", p.FolderID))
	}
	return Query().
		Field(F("docs", Int("limit", limitOr(p.Limit, DefaultDocsLimit)), Raw("filter", filter)).
			Select("id", "name", "created_at", "workspace_id", "folder_id", "user_id")).
		Build()
}

// GetDocContent renders the document content query
func GetDocContent(p *DocContentParams) (*Document, error) {
	return Query().
		Field(F("docs", IDs("ids", []string{p.DocID})).Select("id", "name", "content")).
		Build()
}

// CreateDoc renders create_doc
func CreateDoc(p *CreateDocParams) (*Document, error) {
	return Mutation().
		Field(F("create_doc",
			String("name", p.Title),
			String("content", p.Content),
			OptID("folder_id", p.FolderID),
		).Select("id", "name")).
		Build()
}

// AddDocBlock renders add_doc_block
func AddDocBlock(p *AddDocBlockParams) (*Document, error) {
	return Mutation().
		Field(F("add_doc_block",
			ID("doc_id", p.DocID),
			Enum("type", p.BlockType),
			String("content", p.Content),
			OptID("after_block_id", p.AfterBlockID),
		).Select("id", "type")).
		Build()
}

// GetItemFiles renders the item file-column and asset query
func GetItemFiles(p *ItemFilesParams) (*Document, error) {
	return Query().
		Field(F("items", ID("ids", p.ItemID)).Select(
			"id", "name",
			F("column_values").Select("id", "type", "value", "text", F("column").Select("title")),
			F("assets").Select(assetFields...).Select(F("uploaded_by").Select("id", "name")),
		)).
		Build()
}

// GetUpdateFiles renders the update asset query
func GetUpdateFiles(p *UpdateFilesParams) (*Document, error) {
	return Query().
		Field(F("updates", ID("ids", p.UpdateID)).Select(
			"id", "body", "created_at",
			F("assets").Select(assetFields...),
		)).
		Build()
}
