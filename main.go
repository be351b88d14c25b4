// NPS MCP Server - A Model Context Protocol server for the U.S. National
// Park Service API. Provides tools for finding parks, reading park details,
// and checking alerts.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/parkscout/nps-mcp-server/internal/nps"
	"github.com/parkscout/nps-mcp-server/tools"
	"github.com/parkscout/nps-mcp-server/tracing"
)

const (
	ServerName    = "nps-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `NPS MCP Server provides read-only tools for querying the U.S. National Park Service API.

Available tools:
- find_parks: Search parks by state, free text, or activity
- get_park_details: Full details for one park by park code
- get_alerts: Current alerts (closures, hazards), optionally by park

Configure via environment variables:
- NPS_API_KEY: developer.nps.gov API key (requests are attempted without it, but upstream will reject them)
- NPS_API_URL: Override the API base URL (default https://developer.nps.gov/api/v1)
- NPS_TIMEOUT: HTTP timeout, e.g. "30s"`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_* is configured)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Load configuration from environment
	config := nps.LoadConfig()
	if !config.HasAPIKey() {
		logger.Warn("NPS_API_KEY is not set; requests will be attempted without a credential and upstream will likely reject them")
	}

	// Create NPS API client
	client := nps.NewClientFromConfig(config, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	logger.Info("Starting NPS MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"api_url", config.BaseURL,
	)

	// Run server on stdio transport; transport failure is the one fatal path
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
