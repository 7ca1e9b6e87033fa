// ABOUTME: MCP tool handler implementations for the manual QA server
// ABOUTME: Maps pipeline errors to tool errors and formats answers as Markdown
package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harper/manualqa/internal/core"
	"github.com/harper/manualqa/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// noKnowledgeBaseAdvisory is shown when a question arrives before any upload.
// This is guidance for the user, not a tool failure.
const noKnowledgeBaseAdvisory = "⚠️ No manual has been ingested yet. Run build_knowledge_base with a PDF path first."

// Handlers contains the handler functions for the MCP tools
type Handlers struct {
	service *core.Service
}

// BuildKnowledgeBase handles the build_knowledge_base tool
func (h *Handlers) BuildKnowledgeBase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read PDF: %v", err)), nil
	}

	status, err := h.service.BuildKnowledgeBase(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build knowledge base: %v", err)), nil
	}

	return mcp.NewToolResultText(status), nil
}

// AskQuestion handles the ask_question tool
func (h *Handlers) AskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	result, err := h.service.AskQuestion(question)
	if errors.Is(err, core.ErrNoKnowledgeBase) {
		return mcp.NewToolResultText(noKnowledgeBaseAdvisory), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to answer question: %v", err)), nil
	}

	return mcp.NewToolResultText(FormatAnswerMarkdown(result)), nil
}

// FormatAnswerMarkdown renders an answer with its citation list. Duplicate
// citations collapse to one line, first occurrence wins the ordering.
func FormatAnswerMarkdown(result models.QueryResult) string {
	var b strings.Builder

	b.WriteString("### 💬 Answer\n\n")
	b.WriteString(result.Answer)

	if len(result.Citations) > 0 {
		b.WriteString("\n\n---\n\n📖 **Sources**\n")
		seen := make(map[string]bool)
		for _, c := range result.Citations {
			line := c.String()
			if seen[line] {
				continue
			}
			seen[line] = true
			b.WriteString("\n- " + line)
		}
	}

	return b.String()
}
