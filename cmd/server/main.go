// ABOUTME: Main entry point for the manual QA MCP server with stdio transport
// ABOUTME: Initializes config, OpenAI client, pipeline service, and MCP tools
package main

import (
	"log"

	"github.com/harper/manualqa/internal/config"
	"github.com/harper/manualqa/internal/core"
	"github.com/harper/manualqa/internal/llm"
	"github.com/harper/manualqa/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

var version = "dev"

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := llm.NewOpenAIClientWithConfig(llm.ConfigFrom(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}
	service := core.NewService(cfg, client)

	server := mcpserver.NewMCPServer(
		"Manual QA",
		version,
	)

	mcp.RegisterTools(server, service)

	log.Println("Manual QA MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
