package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/monday-mcp/engine/normalize"
	"github.com/compozy/monday-mcp/engine/tools"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"})
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

func newToolsCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the tool catalog",
		Long: `Inspect the tools served to MCP clients.

Available subcommands:
  list     - List every tool, grouped into read and write tools
  show     - Show the description and parameters of one tool
  export   - Export the catalog as JSON, YAML or Markdown`,
	}
	cmd.AddCommand(
		newListToolsCommand(st),
		newShowToolCommand(st),
		newExportToolsCommand(st),
	)
	return cmd
}

func catalog(st *state) *tools.Registry {
	return tools.NewRegistry(normalize.New(st.config.WorkspaceURL()))
}

func newListToolsCommand(st *state) *cobra.Command {
	var detailed bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available tools",
		Args:  cobra.NoArgs,
		Example: `  # List all tools
  monday-mcp tools list

  # Include descriptions and parameters
  monday-mcp tools list --detailed`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeToolList(cmd.OutOrStdout(), catalog(st), detailed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Show descriptions and parameters")
	return cmd
}

func writeToolList(out io.Writer, registry *tools.Registry, detailed bool) {
	groups := map[string][]tools.Entry{}
	for _, def := range registry.Definitions() {
		entry := tools.Describe(def)
		access := "write"
		if entry.ReadOnly {
			access = "read"
		}
		groups[access] = append(groups[access], entry)
	}

	caser := cases.Title(language.English)
	for _, access := range []string{"read", "write"} {
		entries := groups[access]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s\n", headingStyle.Render(caser.String(access)+" tools:"))
		for _, entry := range entries {
			fmt.Fprintf(out, "  %s", nameStyle.Render(entry.Name))
			if entry.Title != "" {
				fmt.Fprintf(out, " %s", mutedStyle.Render("- "+entry.Title))
			}
			fmt.Fprintln(out)
			if detailed {
				fmt.Fprintf(out, "    %s\n", entry.Description)
				for _, p := range entry.Parameters {
					fmt.Fprintf(out, "    %s\n", mutedStyle.Render(parameterLine(p)))
				}
			}
		}
	}
}

func parameterLine(p tools.Parameter) string {
	line := fmt.Sprintf("%s (%s", p.Name, p.Type)
	if p.Required {
		line += ", required"
	}
	return line + ")"
}

func newShowToolCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tool-name>",
		Short: "Show details of a tool",
		Args:  cobra.ExactArgs(1),
		Example: `  # Show the parameters of create-item
  monday-mcp tools show monday-create-item`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, ok := catalog(st).Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown tool: %s", args[0])
			}
			entry := tools.Describe(tool.Definition())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", headingStyle.Render(entry.Name))
			if entry.Title != "" {
				fmt.Fprintf(out, "Title: %s\n", entry.Title)
			}
			access := "write"
			if entry.ReadOnly {
				access = "read-only"
			}
			fmt.Fprintf(out, "Access: %s\n\n%s\n\nParameters:\n", access, entry.Description)
			if len(entry.Parameters) == 0 {
				fmt.Fprintln(out, "  No parameters")
			}
			for _, p := range entry.Parameters {
				fmt.Fprintf(out, "  %s\n", parameterLine(p))
				if p.Description != "" {
					fmt.Fprintf(out, "      %s\n", strings.ReplaceAll(p.Description, "\n", "\n      "))
				}
			}
			return nil
		},
	}
}

func newExportToolsCommand(st *state) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the tool catalog",
		Long: `Export every tool descriptor in one of the supported formats:
  - json: JSON array (default)
  - yaml: YAML sequence
  - markdown: one section per tool with a parameter table`,
		Args: cobra.NoArgs,
		Example: `  # Export to stdout as JSON
  monday-mcp tools export

  # Write Markdown reference docs
  monday-mcp tools export --format markdown --output TOOLS.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := tools.ParseExportFormat(format)
			if err != nil {
				return err
			}
			writer := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				writer = file
			}
			registry := catalog(st)
			if err := tools.NewExporter(parsed).Export(writer, registry.Definitions()); err != nil {
				return fmt.Errorf("failed to export tools: %w", err)
			}
			if output != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "✅ Exported %d tools to %s\n", len(registry.Names()), output)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Export format: json, yaml, markdown")
	cmd.Flags().StringVar(&output, "output", "", "Output file (defaults to stdout)")
	return cmd
}
