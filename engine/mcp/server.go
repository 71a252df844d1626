package mcp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/compozy/monday-mcp/pkg/logger"
	mcpconfig "github.com/compozy/monday-mcp/pkg/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const shutdownTimeout = 5 * time.Second

// Server represents the MCP server
type Server struct {
	config    *mcpconfig.Config
	invoker   Invoker
	mcpServer *server.MCPServer

	mu        sync.Mutex
	sseServer *server.SSEServer
}

// NewServer creates a new MCP server instance
func NewServer(config *mcpconfig.Config, invoker Invoker, version string) *Server {
	if config == nil {
		config = mcpconfig.DefaultConfig()
	}
	s := &Server{
		config:  config,
		invoker: invoker,
	}

	s.mcpServer = server.NewMCPServer(
		config.Server.Name,
		version,
		server.WithToolCapabilities(false), // Static tool set
		server.WithRecovery(),
	)

	s.registerTools()

	return s
}

// MCPServer returns the underlying protocol server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// registerTools registers every tool of the invoker
func (s *Server) registerTools() {
	for _, tool := range s.invoker.ListTools() {
		s.mcpServer.AddTool(tool, s.handleTool)
	}
}

// handleTool forwards a call to the invoker. Failures are returned as errors
// so the host answers with a protocol-level error.
func (s *Server) handleTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	blocks, err := s.invoker.Invoke(ctx, req.Params.Name, arguments(req))
	if err != nil {
		return nil, err
	}
	return newToolResult(blocks), nil
}

// Start serves the configured transport until ctx is canceled
func (s *Server) Start(ctx context.Context) error {
	if s.config.Server.Transport == mcpconfig.TransportSSE {
		return s.ServeSSE(ctx)
	}
	return s.ServeStdio(ctx, os.Stdin, os.Stdout)
}

// ServeStdio serves JSON-RPC over the given streams
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	logger.Info("Starting MCP server on stdio")

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(logger.StandardLog())
	err := stdio.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// ServeSSE serves the SSE transport on the configured address
func (s *Server) ServeSSE(ctx context.Context) error {
	s.mu.Lock()
	s.sseServer = server.NewSSEServer(s.mcpServer, server.WithBaseURL(s.config.BaseURL()))
	sse := s.sseServer
	s.mu.Unlock()

	logger.Info("Starting MCP server on SSE", "address", s.config.Address())

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(s.config.Address())
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

// Shutdown stops a running SSE transport
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sse := s.sseServer
	s.mu.Unlock()
	if sse == nil {
		return nil
	}
	logger.Info("Shutting down MCP server")
	return sse.Shutdown(ctx)
}
