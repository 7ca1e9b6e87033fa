// ABOUTME: Tests for manual title extraction and chunk stamping
package core

import (
	"testing"

	"github.com/harper/manualqa/internal/models"
)

func TestExtractManualTitle(t *testing.T) {
	tests := []struct {
		name  string
		pages []models.PageRecord
		want  string
	}{
		{
			"first long line wins",
			[]models.PageRecord{{Text: "Field Manual 3-21\nChapter 1", PageNumber: 1}},
			"Field Manual 3-21",
		},
		{
			"short lines skipped",
			[]models.PageRecord{{Text: "FM\n1.0\nInfantry Rifle Platoon", PageNumber: 1}},
			"Infantry Rifle Platoon",
		},
		{
			"exactly three characters is too short",
			[]models.PageRecord{{Text: "abc\nabcd", PageNumber: 1}},
			"abcd",
		},
		{
			"whitespace trimmed before measuring",
			[]models.PageRecord{{Text: "   ab   \n  Supply Handbook  ", PageNumber: 1}},
			"Supply Handbook",
		},
		{
			"all lines short falls back to sentinel",
			[]models.PageRecord{{Text: "FM\n1\nv2", PageNumber: 1}},
			DefaultManualTitle,
		},
		{
			"no pages falls back to sentinel",
			nil,
			DefaultManualTitle,
		},
		{
			"only first page is scanned",
			[]models.PageRecord{
				{Text: "ab", PageNumber: 1},
				{Text: "Real Title On Page Two", PageNumber: 2},
			},
			DefaultManualTitle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractManualTitle(tt.pages); got != tt.want {
				t.Errorf("ExtractManualTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnrichChunks_StampsEveryChunk(t *testing.T) {
	chunks := []models.Chunk{
		models.NewChunk("a", "", 1),
		models.NewChunk("b", "Supply", 2),
	}

	enriched := EnrichChunks(chunks, "Field Manual 3-21")

	if len(enriched) != 2 {
		t.Fatalf("EnrichChunks() returned %d chunks, want 2", len(enriched))
	}
	for i, chunk := range enriched {
		if chunk.SourceTitle != "Field Manual 3-21" {
			t.Errorf("chunk %d SourceTitle = %q, want %q", i, chunk.SourceTitle, "Field Manual 3-21")
		}
	}
}
