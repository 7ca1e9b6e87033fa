// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Service construction from environment plus answer rendering
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/harper/manualqa/internal/config"
	"github.com/harper/manualqa/internal/core"
	"github.com/harper/manualqa/internal/llm"
	"github.com/harper/manualqa/internal/models"
	"github.com/joho/godotenv"
)

// newService loads configuration from the environment and wires the
// pipeline over a real OpenAI client. topK overrides RETRIEVAL_K when
// positive.
func newService(topK int) (*core.Service, error) {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if topK > 0 {
		cfg.RetrievalK = topK
	}

	client, err := llm.NewOpenAIClientWithConfig(llm.ConfigFrom(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}

	return core.NewService(cfg, client), nil
}

// ingestPDF reads a manual from disk and builds the knowledge base.
func ingestPDF(service *core.Service, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	status, err := service.BuildKnowledgeBase(data)
	if err != nil {
		return fmt.Errorf("failed to build knowledge base: %w", err)
	}
	if !quiet {
		fmt.Fprintln(out, status)
	}
	return nil
}

// renderAnswer writes the answer and its citations for terminal display.
func renderAnswer(out io.Writer, result models.QueryResult) {
	fmt.Fprintln(out, result.Answer)

	if len(result.Citations) == 0 {
		return
	}
	fmt.Fprintln(out, "\nSources:")
	seen := make(map[string]bool)
	for _, c := range result.Citations {
		line := c.String()
		if seen[line] {
			continue
		}
		seen[line] = true
		fmt.Fprintf(out, "  - %s\n", line)
	}
}
