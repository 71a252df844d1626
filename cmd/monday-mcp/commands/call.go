package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/engine/gateway"
	"github.com/compozy/monday-mcp/engine/query"
	"github.com/compozy/monday-mcp/pkg/progress"
	"github.com/spf13/cobra"
)

// phasedGateway reports the remote round-trip to a progress indicator
type phasedGateway struct {
	next  gateway.Gateway
	phase func(string)
}

func (g *phasedGateway) Execute(ctx context.Context, doc *query.Document) (core.Response, error) {
	g.phase(progress.Phases[1])
	resp, err := g.next.Execute(ctx, doc)
	if err == nil {
		g.phase(progress.Phases[2])
	}
	return resp, err
}

func newCallCommand(st *state) *cobra.Command {
	var rawArgs, argsFile string
	cmd := &cobra.Command{
		Use:   "call <tool-name>",
		Short: "Invoke one tool and print its text output",
		Long: `Invoke a tool exactly as an MCP client would and print the rendered
text blocks. Arguments are a JSON object given inline or read from a file.
Progress is reported on stderr so stdout carries only the result.`,
		Args: cobra.ExactArgs(1),
		Example: `  # List the first five boards
  monday-mcp call monday-list-boards --args '{"limit": 5}'

  # Create an item from a file of arguments
  monday-mcp call monday-create-item --args-file item.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments, err := callArguments(rawArgs, argsFile)
			if err != nil {
				return err
			}
			if err := st.config.RequireAPIKey(); err != nil {
				return err
			}
			client := gateway.NewClient(st.config.Gateway())

			var blocks []core.ContentBlock
			err = progress.Run(cmd.ErrOrStderr(), "Calling "+args[0], func(phase func(string)) error {
				phase(progress.Phases[0])
				dispatcher := newDispatcher(st.config, &phasedGateway{next: client, phase: phase})
				var invokeErr error
				blocks, invokeErr = dispatcher.Invoke(cmd.Context(), args[0], arguments)
				return invokeErr
			})
			if err != nil {
				return err
			}

			texts := make([]string, 0, len(blocks))
			for _, block := range blocks {
				texts = append(texts, block.Text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(texts, "\n\n"))
			return nil
		},
	}
	cmd.Flags().StringVar(&rawArgs, "args", "", "Tool arguments as a JSON object")
	cmd.Flags().StringVar(&argsFile, "args-file", "", "JSON file containing tool arguments")
	cmd.MarkFlagsMutuallyExclusive("args", "args-file")
	return cmd
}

func callArguments(raw, file string) (map[string]any, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read arguments file: %w", err)
		}
		raw = string(data)
	}
	arguments := map[string]any{}
	if strings.TrimSpace(raw) == "" {
		return arguments, nil
	}
	if err := json.Unmarshal([]byte(raw), &arguments); err != nil {
		return nil, core.NewError(fmt.Errorf("arguments must be a JSON object: %w", err), core.ErrorCodeInvalidArguments, nil)
	}
	if arguments == nil {
		arguments = map[string]any{}
	}
	return arguments, nil
}
