// ABOUTME: Chunk is the unit of retrieval - bounded text with provenance
// ABOUTME: Created by chunkers, enriched with the manual title, then embedded
package models

import "github.com/google/uuid"

// Chunk is a bounded piece of manual text with provenance metadata.
// Content is never empty; chunkers discard empty-content sections.
type Chunk struct {
	ChunkID      string `json:"chunk_id"`
	Content      string `json:"content"`
	SectionLabel string `json:"section_label,omitempty"`
	PageNumber   int    `json:"page_number"`
	SourceTitle  string `json:"source_title"`
}

// NewChunk creates a chunk with a fresh ID for the given content and page.
func NewChunk(content, sectionLabel string, pageNumber int) Chunk {
	return Chunk{
		ChunkID:      uuid.New().String(),
		Content:      content,
		SectionLabel: sectionLabel,
		PageNumber:   pageNumber,
	}
}
