package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/compozy/monday-mcp/engine/dispatch"
	"github.com/compozy/monday-mcp/engine/gateway"
	"github.com/compozy/monday-mcp/engine/mcp"
	"github.com/compozy/monday-mcp/engine/normalize"
	"github.com/compozy/monday-mcp/engine/tools"
	"github.com/compozy/monday-mcp/pkg/config"
	"github.com/compozy/monday-mcp/pkg/logger"
	mcpconfig "github.com/compozy/monday-mcp/pkg/mcp"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	http bool
	host string
	port int
}

func newServeCommand(st *state) *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"serve-mcp"},
		Short:   "Start the MCP server",
		Long: `Start the Model Context Protocol server and expose the monday.com tools to
an MCP client. The server speaks JSON-RPC over stdio by default; --http
switches to the SSE transport.

MONDAY_API_KEY (or monday.api_key in the config file) is required.`,
		Example: `  # Serve over stdio, as launched by an MCP client
  monday-mcp serve

  # Serve over SSE on a custom port
  monday-mcp serve --http --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyServeOverrides(cmd, opts, &st.config.MCP)
			if err := st.config.MCP.Validate(); err != nil {
				return fmt.Errorf("invalid MCP configuration: %w", err)
			}
			server, err := newServer(st.config)
			if err != nil {
				return err
			}
			return runWithGracefulShutdown(cmd.Context(), server)
		},
	}
	cmd.Flags().BoolVar(&opts.http, "http", false, "Use the SSE transport instead of stdio")
	cmd.Flags().StringVar(&opts.host, "host", "", "Host to bind the SSE transport")
	cmd.Flags().IntVar(&opts.port, "port", 0, "Port to bind the SSE transport")
	return cmd
}

func applyServeOverrides(cmd *cobra.Command, opts *serveOptions, cfg *mcpconfig.Config) {
	if cmd.Flags().Changed("http") && opts.http {
		cfg.Server.Transport = mcpconfig.TransportSSE
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = opts.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = opts.port
	}
}

// newDispatcher wires the gateway, catalog and renderer for cfg
func newDispatcher(cfg *config.Config, gw gateway.Gateway) *dispatch.Dispatcher {
	registry := tools.NewRegistry(normalize.New(cfg.WorkspaceURL()))
	return dispatch.New(registry, gw)
}

func newServer(cfg *config.Config) (*mcp.Server, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	dispatcher := newDispatcher(cfg, gateway.NewClient(cfg.Gateway()))
	return mcp.NewServer(&cfg.MCP, dispatcher, Version), nil
}

func runWithGracefulShutdown(parent context.Context, server *mcp.Server) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := server.Start(ctx)
	if ctx.Err() != nil {
		logger.Info("Received shutdown signal")
	}
	if err != nil {
		logger.Error("MCP server error", "error", err)
		return err
	}
	return nil
}
