// ABOUTME: Metadata enrichment - manual title extraction and chunk stamping
// ABOUTME: Title heuristic is best-effort, scanning the first page line by line
package core

import (
	"strings"

	"github.com/harper/manualqa/internal/models"
)

// DefaultManualTitle is the sentinel used when no title line is found.
const DefaultManualTitle = "military manual"

// ExtractManualTitle scans the first page's text line by line and returns
// the first line whose trimmed length exceeds 3 characters. This is a
// best-effort heuristic, not a guarantee of correctness.
func ExtractManualTitle(pages []models.PageRecord) string {
	if len(pages) == 0 {
		return DefaultManualTitle
	}
	for _, line := range strings.Split(pages[0].Text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len([]rune(trimmed)) > 3 {
			return trimmed
		}
	}
	return DefaultManualTitle
}

// EnrichChunks stamps every chunk with the manual title for citation.
func EnrichChunks(chunks []models.Chunk, title string) []models.Chunk {
	for i := range chunks {
		chunks[i].SourceTitle = title
	}
	return chunks
}
