package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/query"
	"github.com/compozy/monday-mcp/pkg/errors"
)

// ListBoards renders monday-list-boards
func (n *Normalizer) ListBoards(resp core.Response, _ *query.ListBoardsParams) ([]core.ContentBlock, error) {
	boards, err := decodeList[Board](field(resp, "boards"))
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return core.Texts("No boards found."), nil
	}
	return paragraphs("Available Monday.com Boards:", boards, func(sb *strings.Builder, b Board) {
		fmt.Fprintf(sb, "Board ID: %s\nName: %s\n", b.ID, b.Name)
		if b.Description != "" {
			fmt.Fprintf(sb, "Description: %s\n", b.Description)
		}
		fmt.Fprintf(sb, "State: %s\nKind: %s\nWorkspace ID: %s\n", b.State, b.BoardKind, orNone(b.WorkspaceID))
	}), nil
}

// board decodes the first board of a boards(ids: ...) lookup
func board(resp core.Response) (*Board, error) {
	boards, err := decodeList[Board](field(resp, "boards"))
	if err != nil || len(boards) == 0 {
		return nil, err
	}
	return &boards[0], nil
}

// GetBoardGroups renders monday-get-board-groups
func (n *Normalizer) GetBoardGroups(resp core.Response, p *query.BoardParams) ([]core.ContentBlock, error) {
	b, err := board(resp)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return core.Texts(fmt.Sprintf("Board %s not found.", p.BoardID)), nil
	}
	if len(b.Groups) == 0 {
		return core.Texts(fmt.Sprintf("No groups found on board %s.", p.BoardID)), nil
	}
	header := fmt.Sprintf("Groups of Monday.com board %s (ID: %s):", b.Name, b.ID)
	return paragraphs(header, b.Groups, func(sb *strings.Builder, g Group) {
		fmt.Fprintf(sb, "Group ID: %s\nTitle: %s\nColor: %s\nPosition: %s\n", g.ID, g.Title, g.Color, g.Position)
		if g.Archived {
			sb.WriteString("Archived: yes\n")
		}
	}), nil
}

// GetBoardColumns renders monday-get-board-columns
func (n *Normalizer) GetBoardColumns(resp core.Response, p *query.BoardParams) ([]core.ContentBlock, error) {
	b, err := board(resp)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return core.Texts(fmt.Sprintf("Board %s not found.", p.BoardID)), nil
	}
	if len(b.Columns) == 0 {
		return core.Texts(fmt.Sprintf("No columns found on board %s.", p.BoardID)), nil
	}
	header := fmt.Sprintf("Columns of Monday.com board %s (ID: %s):", b.Name, b.ID)
	return paragraphs(header, b.Columns, func(sb *strings.Builder, c Column) {
		fmt.Fprintf(sb, "Column ID: %s\nTitle: %s\nType: %s\n", c.ID, c.Title, c.Type)
		if labels := statusLabels(c); len(labels) > 0 {
			fmt.Fprintf(sb, "Labels: %s\n", strings.Join(labels, ", "))
		}
	}), nil
}

// statusLabels lists the labels of a status column in index order. Settings
// that do not parse yield no labels.
func statusLabels(c Column) []string {
	if c.Type != "status" || c.SettingsStr == "" {
		return nil
	}
	return errors.WithGracefulDegrade("parse status labels", nil, nil, func() ([]string, error) {
		var settings struct {
			Labels any `json:"labels"`
		}
		if err := json.Unmarshal([]byte(c.SettingsStr), &settings); err != nil {
			return nil, err
		}

		var labels []string
		switch v := settings.Labels.(type) {
		case map[string]any:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool {
				a, errA := strconv.Atoi(keys[i])
				b, errB := strconv.Atoi(keys[j])
				if errA != nil || errB != nil {
					return keys[i] < keys[j]
				}
				return a < b
			})
			for _, k := range keys {
				if s, ok := v[k].(string); ok && s != "" {
					labels = append(labels, s)
				}
			}
		case []any:
			for _, entry := range v {
				switch label := entry.(type) {
				case string:
					labels = append(labels, label)
				case map[string]any:
					if s, ok := label["name"].(string); ok && s != "" {
						labels = append(labels, s)
					}
				}
			}
		}
		return labels, nil
	})
}
