package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rtakeda/flowdoc"
	"github.com/rtakeda/flowdoc/pkg/domain"
)

// Engine defines the interface required by the MCP server to interact
// with flowdoc.
type Engine interface {
	Inspect() (*domain.Graph, error)
	Mermaid() (string, error)
	Sync(ctx context.Context, docPath string) error
	Check(ctx context.Context, docPath string) (bool, error)
}

// SyncResponse is the structured result of the sync_docs tool.
type SyncResponse struct {
	Path   string `json:"path" jsonschema_description:"The document that was synced"`
	InSync bool   `json:"in_sync" jsonschema_description:"Whether the document now matches the graph"`
}

// Server wraps the flowdoc Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("flowdoc-mcp", strings.TrimSpace(flowdoc.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the full flow graph definition (nodes and edges) as JSON."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		g, err := s.engine.Inspect()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("inspect failed: %v", err)), nil
		}
		payload := map[string]any{
			"nodes": g.Nodes(),
			"edges": g.Edges(),
		}
		jsonBytes, _ := json.Marshal(payload)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: render_diagram
	s.mcpServer.AddTool(mcp.NewTool("render_diagram",
		mcp.WithDescription("Render the flow graph as Mermaid flowchart text."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := s.engine.Mermaid()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
		}
		return mcp.NewToolResultText(out), nil
	})

	// TOOL: sync_docs
	syncTool := mcp.NewTool("sync_docs",
		mcp.WithDescription("Regenerate the diagram block inside a marker-delimited markdown document."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the target document")),
		mcp.WithBoolean("check", mcp.Description("Only report drift, do not write")),
		mcp.WithOutputSchema[SyncResponse](),
	)
	s.mcpServer.AddTool(syncTool, mcp.NewStructuredToolHandler(s.handleSync))
}

func (s *Server) handleSync(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SyncResponse, error) {
	path, _ := args["path"].(string)
	if path == "" {
		return SyncResponse{}, fmt.Errorf("path is required")
	}

	checkOnly, _ := args["check"].(bool)
	if checkOnly {
		inSync, err := s.engine.Check(ctx, path)
		if err != nil {
			return SyncResponse{}, fmt.Errorf("check failed: %w", err)
		}
		return SyncResponse{Path: path, InSync: inSync}, nil
	}

	if err := s.engine.Sync(ctx, path); err != nil {
		return SyncResponse{}, fmt.Errorf("sync failed: %w", err)
	}
	return SyncResponse{Path: path, InSync: true}, nil
}
