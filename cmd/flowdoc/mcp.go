package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rtakeda/flowdoc"
	"github.com/rtakeda/flowdoc/internal/cli"
	"github.com/rtakeda/flowdoc/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts flowdoc as an MCP Server.
This allows AI agents (like Claude Desktop) to inspect the flow graph, render
diagrams and keep documentation in sync as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		flowPath, _ := cmd.Flags().GetString("flow")
		if !cmd.Flags().Changed("flow") && len(args) > 0 {
			flowPath = args[0]
		}

		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// MCP over stdio owns stdout; log to stderr only.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)

		engine, err := flowdoc.New(flowPath, flowdoc.WithLogger(logger))
		if err != nil {
			log.Fatalf("Error initializing flowdoc: %v", err)
		}

		server := mcp.NewServer(engine)

		switch transport {
		case "sse":
			sigCtx := cli.NewSignalContext(context.Background())
			defer sigCtx.Cancel()
			if err := server.ServeSSE(sigCtx, port); err != nil {
				log.Fatalf("MCP server error: %v", err)
			}
		default:
			if err := server.ServeStdio(); err != nil {
				log.Fatalf("MCP server error: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport to use (stdio or sse)")
	mcpCmd.Flags().Int("port", 8090, "Port for the SSE transport")
}
