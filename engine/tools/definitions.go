package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names. They are part of the public contract with MCP hosts and must
// not change.
const (
	ListBoards          = "monday-list-boards"
	GetBoardGroups      = "monday-get-board-groups"
	GetBoardColumns     = "monday-get-board-columns"
	CreateItem          = "monday-create-item"
	UpdateItem          = "monday-update-item"
	CreateUpdate        = "monday-create-update"
	ListItemsInGroups   = "monday-list-items-in-groups"
	ListSubitemsInItems = "monday-list-subitems-in-items"
	GetItemUpdates      = "monday-get-item-updates"
	GetDocs             = "monday-get-docs"
	GetDocContent       = "monday-get-doc-content"
	CreateDoc           = "monday-create-doc"
	AddDocBlock         = "monday-add-doc-block"
	GetItemFiles        = "monday-get-item-files"
	GetUpdateFiles      = "monday-get-update-files"
)

const boardIDDescription = "Monday.com Board ID that the Item or Sub-item is on."

func boolPtr(b bool) *bool {
	return &b
}

func readOnly(title string) mcp.ToolOption {
	return mcp.WithToolAnnotation(mcp.ToolAnnotation{
		Title:         title,
		ReadOnlyHint:  boolPtr(true),
		OpenWorldHint: boolPtr(true),
	})
}

func writes(title string) mcp.ToolOption {
	return mcp.WithToolAnnotation(mcp.ToolAnnotation{
		Title:           title,
		ReadOnlyHint:    boolPtr(false),
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	})
}

func stringList() mcp.PropertyOption {
	return mcp.Items(map[string]any{"type": "string"})
}

func listBoardsTool() mcp.Tool {
	return mcp.NewTool(ListBoards,
		mcp.WithDescription("Get all Boards from Monday.com"),
		readOnly("List boards"),
		mcp.WithNumber("limit", mcp.Description("Maximum number of Monday.com Boards to return.")),
	)
}

func getBoardGroupsTool() mcp.Tool {
	return mcp.NewTool(GetBoardGroups,
		mcp.WithDescription("Get the Groups of a Monday.com Board."),
		readOnly("Get board groups"),
		mcp.WithString("boardId", mcp.Required(), mcp.Description(boardIDDescription)),
	)
}

func getBoardColumnsTool() mcp.Tool {
	return mcp.NewTool(GetBoardColumns,
		mcp.WithDescription("Get the Columns of a Monday.com Board."),
		readOnly("Get board columns"),
		mcp.WithString("boardId", mcp.Required(), mcp.Description(boardIDDescription)),
	)
}

func createItemTool() mcp.Tool {
	return mcp.NewTool(CreateItem,
		mcp.WithDescription("Create a new item in a Monday.com Board. Optionally, specify the parent Item ID to create a Sub-item."),
		writes("Create item"),
		mcp.WithString("boardId", mcp.Required(), mcp.Description(boardIDDescription)),
		mcp.WithString("itemTitle", mcp.Required(),
			mcp.Description("Name of the Monday.com Item or Sub-item that will be created.")),
		mcp.WithString("groupId",
			mcp.Description("Monday.com Board's Group ID to create the Item in. If set, parentItemId should not be set.")),
		mcp.WithString("parentItemId",
			mcp.Description("Monday.com Item ID to create the Sub-item under. If set, groupId should not be set.")),
		mcp.WithObject("columnValues", mcp.Description("Dictionary of column values to set {column_id: value}")),
	)
}

func updateItemTool() mcp.Tool {
	return mcp.NewTool(UpdateItem,
		mcp.WithDescription("Update a Monday.com item's or sub-item's column values."),
		writes("Update item"),
		mcp.WithString("boardId", mcp.Required(), mcp.Description(boardIDDescription)),
		mcp.WithString("itemId", mcp.Required(),
			mcp.Description("Monday.com Item or Sub-item ID to update the columns of.")),
		mcp.WithObject("columnValues", mcp.Required(),
			mcp.Description("Dictionary of column values to update the Monday.com Item or Sub-item with. ({column_id: value})")),
	)
}

func createUpdateTool() mcp.Tool {
	return mcp.NewTool(CreateUpdate,
		mcp.WithDescription("Create an update (comment) on a Monday.com Item or Sub-item."),
		writes("Create update"),
		mcp.WithString("itemId", mcp.Required()),
		mcp.WithString("updateText", mcp.Required(),
			mcp.Description("Content to update the Item or Sub-item with.")),
	)
}

func listItemsInGroupsTool() mcp.Tool {
	return mcp.NewTool(ListItemsInGroups,
		mcp.WithDescription("List all items in the specified groups of a Monday.com board"),
		readOnly("List items in groups"),
		mcp.WithString("boardId", mcp.Required(), mcp.Description(boardIDDescription)),
		mcp.WithArray("groupIds", mcp.Required(), stringList()),
		mcp.WithNumber("limit"),
		mcp.WithString("cursor", mcp.Description("Cursor returned by a previous call, to fetch the next page.")),
	)
}

func listSubitemsTool() mcp.Tool {
	return mcp.NewTool(ListSubitemsInItems,
		mcp.WithDescription("List all Sub-items of a list of Monday.com Items"),
		readOnly("List sub-items"),
		mcp.WithArray("itemIds", mcp.Required(), stringList()),
	)
}

func getItemUpdatesTool() mcp.Tool {
	return mcp.NewTool(GetItemUpdates,
		mcp.WithDescription("Get updates for a specific item in Monday.com"),
		readOnly("Get item updates"),
		mcp.WithString("itemId", mcp.Required(), mcp.Description("ID of the Monday.com item to get updates for.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of updates to retrieve. Default is 25.")),
	)
}

func getDocsTool() mcp.Tool {
	return mcp.NewTool(GetDocs,
		mcp.WithDescription("Get a list of documents from Monday.com, optionally filtered by folder"),
		readOnly("List documents"),
		mcp.WithNumber("limit", mcp.Description("Maximum number of documents to retrieve. Default is 25.")),
		mcp.WithString("folder_id", mcp.Description("Optional folder ID to filter documents by.")),
	)
}

func getDocContentTool() mcp.Tool {
	return mcp.NewTool(GetDocContent,
		mcp.WithDescription("Get the content of a specific document by ID"),
		readOnly("Get document content"),
		mcp.WithString("doc_id", mcp.Required(), mcp.Description("ID of the Monday.com document to retrieve.")),
	)
}

func createDocTool() mcp.Tool {
	return mcp.NewTool(CreateDoc,
		mcp.WithDescription("Create a new document in Monday.com"),
		writes("Create document"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the document to create.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content of the document to create.")),
		mcp.WithString("folder_id", mcp.Description("Optional folder ID to create the document in.")),
	)
}

func addDocBlockTool() mcp.Tool {
	return mcp.NewTool(AddDocBlock,
		mcp.WithDescription("Add a block to a document"),
		writes("Add document block"),
		mcp.WithString("doc_id", mcp.Required(), mcp.Description("ID of the Monday.com document to add a block to.")),
		mcp.WithString("block_type", mcp.Required(),
			mcp.Description("Type of block to add (normal_text, bullet_list, numbered_list, heading, divider, etc.).")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content of the block to add.")),
		mcp.WithString("after_block_id", mcp.Description("Optional ID of the block to add this block after.")),
	)
}

func getItemFilesTool() mcp.Tool {
	return mcp.NewTool(GetItemFiles,
		mcp.WithDescription("Get files (PDFs, documents, images, etc.) attached to a Monday.com item"),
		readOnly("Get item files"),
		mcp.WithString("itemId", mcp.Required(), mcp.Description("ID of the Monday.com item to get files from.")),
	)
}

func getUpdateFilesTool() mcp.Tool {
	return mcp.NewTool(GetUpdateFiles,
		mcp.WithDescription("Get files (PDFs, documents, images, etc.) attached to a specific update in Monday.com"),
		readOnly("Get update files"),
		mcp.WithString("updateId", mcp.Required(), mcp.Description("ID of the Monday.com update to get files from.")),
	)
}
