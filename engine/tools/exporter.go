package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

// ExportFormat represents the catalog export format
type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatYAML     ExportFormat = "yaml"
	FormatMarkdown ExportFormat = "markdown"
)

// ParseExportFormat validates a format name
func ParseExportFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// Parameter describes one tool argument
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Entry is the exported view of one tool descriptor
type Entry struct {
	Name        string      `json:"name" yaml:"name"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`
	Description string      `json:"description" yaml:"description"`
	ReadOnly    bool        `json:"read_only" yaml:"read_only"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
}

// Describe flattens a descriptor. Required parameters come first, then the
// rest by name.
func Describe(tool mcp.Tool) Entry {
	entry := Entry{
		Name:        tool.Name,
		Title:       tool.Annotations.Title,
		Description: tool.Description,
		ReadOnly:    tool.Annotations.ReadOnlyHint != nil && *tool.Annotations.ReadOnlyHint,
		Parameters:  make([]Parameter, 0, len(tool.InputSchema.Properties)),
	}
	for name, raw := range tool.InputSchema.Properties {
		param := Parameter{Name: name, Required: slices.Contains(tool.InputSchema.Required, name)}
		if schema, ok := raw.(map[string]any); ok {
			param.Type, _ = schema["type"].(string)
			param.Description, _ = schema["description"].(string)
			if items, ok := schema["items"].(map[string]any); ok && param.Type == "array" {
				if itemType, ok := items["type"].(string); ok {
					param.Type = "array<" + itemType + ">"
				}
			}
		}
		entry.Parameters = append(entry.Parameters, param)
	}
	sort.SliceStable(entry.Parameters, func(i, j int) bool {
		a, b := entry.Parameters[i], entry.Parameters[j]
		if a.Required != b.Required {
			return a.Required
		}
		return a.Name < b.Name
	})
	return entry
}

// Exporter writes the tool catalog in a given format
type Exporter struct {
	format ExportFormat
}

// NewExporter creates a new exporter for the given format
func NewExporter(format ExportFormat) *Exporter {
	if format == "" {
		format = FormatJSON
	}
	return &Exporter{format: format}
}

// Export writes every descriptor to writer
func (e *Exporter) Export(writer io.Writer, defs []mcp.Tool) error {
	entries := make([]Entry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, Describe(def))
	}

	switch e.format {
	case FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = writer.Write(append(data, '\n'))
		return err
	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return encoder.Close()
	case FormatMarkdown:
		_, err := io.WriteString(writer, markdown(entries))
		return err
	default:
		return fmt.Errorf("unsupported export format: %s", e.format)
	}
}

func markdown(entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("# monday.com MCP tools\n")
	for _, entry := range entries {
		fmt.Fprintf(&sb, "\n## %s\n\n%s\n", entry.Name, entry.Description)
		if entry.ReadOnly {
			sb.WriteString("\nRead-only.\n")
		}
		if len(entry.Parameters) == 0 {
			continue
		}
		sb.WriteString("\n| Parameter | Type | Required | Description |\n|---|---|---|---|\n")
		for _, p := range entry.Parameters {
			required := "no"
			if p.Required {
				required = "yes"
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", p.Name, p.Type, required, escapeCell(p.Description))
		}
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
