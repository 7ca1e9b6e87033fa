// ABOUTME: MCP tool definitions and registration for the manual QA server
// ABOUTME: Exposes knowledge base building and question answering as tools
package mcp

import (
	"github.com/harper/manualqa/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the manual QA tools with the server
func RegisterTools(server *mcpserver.MCPServer, service *core.Service) *Handlers {
	handlers := &Handlers{service: service}

	// 1. build_knowledge_base - Ingest a manual PDF into the in-memory index
	server.AddTool(mcp.Tool{
		Name:        "build_knowledge_base",
		Description: "Ingest a manual PDF from disk into the in-memory knowledge base. Replaces any previously ingested manual.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Filesystem path of the PDF manual to ingest",
				},
			},
			Required: []string{"path"},
		},
	}, handlers.BuildKnowledgeBase)

	// 2. ask_question - Answer a question from the ingested manual
	server.AddTool(mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a question using only the ingested manual, with page citations.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer from the manual",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskQuestion)

	return handlers
}
