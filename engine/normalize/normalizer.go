package normalize

import (
	"fmt"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
)

// Normalizer turns monday.com responses into text content blocks. Absent or
// empty results always render an informational block; only responses whose
// shape cannot be decoded are reported as errors.
type Normalizer struct {
	workspaceURL string
}

// New creates a normalizer that builds human-facing links under workspaceURL
func New(workspaceURL string) *Normalizer {
	return &Normalizer{workspaceURL: strings.TrimRight(workspaceURL, "/")}
}

// link joins path segments onto the workspace URL
func (n *Normalizer) link(segments ...string) string {
	return n.workspaceURL + "/" + strings.Join(segments, "/")
}

// field returns data[key], or nil when the response carries no data
func field(resp core.Response, key string) any {
	data := resp.Data()
	if data == nil {
		return nil
	}
	return data[key]
}

func decodeList[T any](raw any) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	var out []T
	if err := decode(raw, &out); err != nil {
		return nil, invalidResponse(err)
	}
	return out, nil
}

func decodeOne[T any](raw any) (*T, error) {
	if raw == nil {
		return nil, nil
	}
	var out T
	if err := decode(raw, &out); err != nil {
		return nil, invalidResponse(err)
	}
	return &out, nil
}

func invalidResponse(err error) error {
	return core.NewError(fmt.Errorf("unexpected response shape: %w", err), core.ErrorCodeInvalidResponse, nil)
}

// paragraphs renders a header followed by one paragraph per entry
func paragraphs[T any](header string, entries []T, render func(*strings.Builder, T)) []core.ContentBlock {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")
	for _, entry := range entries {
		render(&sb, entry)
		sb.WriteString("\n")
	}
	return core.Texts(strings.TrimRight(sb.String(), "\n"))
}

func userLabel(u *User) string {
	if u == nil || (u.ID == "" && u.Name == "") {
		return "Unknown"
	}
	return fmt.Sprintf("%s (%s)", u.Name, u.ID)
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
