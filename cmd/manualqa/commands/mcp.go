// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to build knowledge bases and ask questions via stdio
package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/harper/manualqa/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Manual QA as an MCP (Model Context Protocol) server, exposing the
build_knowledge_base and ask_question tools over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  manualqa mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "manualqa": {
  #       "command": "manualqa",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	service, err := newService(0)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"Manual QA",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, service)

	if !quiet {
		log.Println("Manual QA MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
