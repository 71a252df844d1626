package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Entities decoded from monday.com response data. Field tags follow the API's
// snake_case names; numbers and nulls are coerced into the declared types.

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Group struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	Position string `json:"position"`
	Archived bool   `json:"archived"`
}

type Column struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	SettingsStr string `json:"settings_str"`
}

type ColumnValue struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Value  string  `json:"value"`
	Text   string  `json:"text"`
	Column *Column `json:"column"`
}

// Title returns the title of the column, or its id when the column was not selected
func (cv ColumnValue) Title() string {
	if cv.Column != nil && cv.Column.Title != "" {
		return cv.Column.Title
	}
	return cv.ID
}

type Board struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	State       string   `json:"state"`
	BoardKind   string   `json:"board_kind"`
	WorkspaceID string   `json:"workspace_id"`
	Groups      []Group  `json:"groups"`
	Columns     []Column `json:"columns"`
	ItemsPage   *Page    `json:"items_page"`
}

type Asset struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	URL           string `json:"url"`
	PublicURL     string `json:"public_url"`
	FileExtension string `json:"file_extension"`
	FileSize      int64  `json:"file_size"`
	CreatedAt     string `json:"created_at"`
	UploadedBy    *User  `json:"uploaded_by"`
}

type Update struct {
	ID        string  `json:"id"`
	Body      string  `json:"body"`
	TextBody  string  `json:"text_body"`
	CreatedAt string  `json:"created_at"`
	Creator   *User   `json:"creator"`
	Assets    []Asset `json:"assets"`
}

type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Group        *Group        `json:"group"`
	Board        *Board        `json:"board"`
	ColumnValues []ColumnValue `json:"column_values"`
	Subitems     []Item        `json:"subitems"`
	Updates      []Update      `json:"updates"`
	Assets       []Asset       `json:"assets"`
}

type Page struct {
	Cursor string `json:"cursor"`
	Items  []Item `json:"items"`
}

type Doc struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at"`
	WorkspaceID string `json:"workspace_id"`
	FolderID    string `json:"folder_id"`
	UserID      string `json:"user_id"`
	Content     any    `json:"content"`
}

type Block struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// fileColumnValue is the JSON document stored in a file-type column's value
type fileColumnValue struct {
	Files []struct {
		Name      string `json:"name"`
		URL       string `json:"url"`
		AssetID   any    `json:"assetId"`
		IsImage   any    `json:"isImage"`
		FileType  string `json:"fileType"`
		CreatedAt any    `json:"createdAt"`
	} `json:"files"`
}

// decode copies an untyped response value into a typed entity
func decode(input, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// contentText renders a document body that may be a string or structured JSON
func contentText(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
