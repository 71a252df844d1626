package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/query"
	"github.com/compozy/monday-mcp/pkg/errors"
)

var skipColumn = &errors.GracefulDegradeConfig{LogWarning: true}

// GetItemFiles renders monday-get-item-files from file columns and assets
func (n *Normalizer) GetItemFiles(resp core.Response, p *query.ItemFilesParams) ([]core.ContentBlock, error) {
	items, err := decodeList[Item](field(resp, "items"))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return core.Texts(fmt.Sprintf("No items found with ID %s.", p.ItemID)), nil
	}
	item := items[0]

	var columns []string
	for _, cv := range item.ColumnValues {
		columns = append(columns, columnFiles(cv)...)
	}
	assets := renderAssets(item.Assets)
	if len(columns) == 0 && len(assets) == 0 {
		return core.Texts(fmt.Sprintf("No files found for item %s.", p.ItemID)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Files attached to item %s (%s):\n\n", p.ItemID, item.Name)
	if len(columns) > 0 {
		sb.WriteString("FILES IN COLUMNS:\n")
		sb.WriteString(strings.Join(columns, ""))
		sb.WriteString("\n")
	}
	if len(assets) > 0 {
		sb.WriteString("ASSETS:\n")
		sb.WriteString(strings.Join(assets, ""))
	}
	return core.Texts(strings.TrimRight(sb.String(), "\n")), nil
}

// GetUpdateFiles renders monday-get-update-files
func (n *Normalizer) GetUpdateFiles(resp core.Response, p *query.UpdateFilesParams) ([]core.ContentBlock, error) {
	updates, err := decodeList[Update](field(resp, "updates"))
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return core.Texts(fmt.Sprintf("No update found with ID %s.", p.UpdateID)), nil
	}
	assets := renderAssets(updates[0].Assets)
	if len(assets) == 0 {
		return core.Texts(fmt.Sprintf("No files found for update %s.", p.UpdateID)), nil
	}
	text := fmt.Sprintf("Files attached to update %s:\n\n%s", p.UpdateID, strings.Join(assets, ""))
	return core.Texts(strings.TrimRight(text, "\n")), nil
}

// columnFiles lists the files referenced by a file-type column. A value that
// is not valid JSON or has no files contributes nothing.
func columnFiles(cv ColumnValue) []string {
	if cv.Type != "file" || cv.Value == "" {
		return nil
	}
	return errors.WithGracefulDegrade("parse file column "+cv.ID, skipColumn, nil, func() ([]string, error) {
		var value fileColumnValue
		if err := json.Unmarshal([]byte(cv.Value), &value); err != nil {
			return nil, err
		}
		files := make([]string, 0, len(value.Files))
		for _, f := range value.Files {
			files = append(files, fmt.Sprintf("File Name: %s\nURL: %s\nColumn: %s\n\n", f.Name, f.URL, cv.Title()))
		}
		return files, nil
	})
}

func renderAssets(assets []Asset) []string {
	rendered := make([]string, 0, len(assets))
	for _, a := range assets {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Asset Name: %s\nURL: %s\n", a.Name, a.URL)
		if a.PublicURL != "" {
			fmt.Fprintf(&sb, "Public URL: %s\n", a.PublicURL)
		}
		fmt.Fprintf(&sb, "Type: %s\nSize: %d bytes\nCreated: %s\n", a.FileExtension, a.FileSize, a.CreatedAt)
		if a.UploadedBy != nil {
			fmt.Fprintf(&sb, "Uploaded By: %s\n", userLabel(a.UploadedBy))
		}
		sb.WriteString("\n")
		rendered = append(rendered, sb.String())
	}
	return rendered
}
