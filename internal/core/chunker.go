// ABOUTME: Chunking strategies - fixed overlapping windows and LLM structural split
// ABOUTME: Structural split falls back to one chunk per page on malformed responses
package core

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/harper/manualqa/internal/models"
)

// FixedWindowChunker splits the concatenated page text into overlapping
// windows of at most Size characters, stepping Size-Overlap each time.
// Window boundaries may fall mid-sentence; a chunk is attributed to the
// page where its window starts.
type FixedWindowChunker struct {
	Size    int
	Overlap int
}

// NewFixedWindowChunker creates a fixed-window chunker, clamping bad values
// to the defaults (500-character windows, 100-character overlap).
func NewFixedWindowChunker(size, overlap int) *FixedWindowChunker {
	if size <= 0 {
		size = 500
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}
	return &FixedWindowChunker{Size: size, Overlap: overlap}
}

func (c *FixedWindowChunker) Split(pages []models.PageRecord) ([]models.Chunk, error) {
	// Concatenate pages, recording where each page starts so windows can
	// be attributed back to a page number.
	type boundary struct {
		start      int
		pageNumber int
	}

	var text []rune
	var boundaries []boundary
	for _, page := range pages {
		boundaries = append(boundaries, boundary{start: len(text), pageNumber: page.PageNumber})
		text = append(text, []rune(page.Text)...)
		text = append(text, '\n')
	}

	pageAt := func(pos int) int {
		page := 0
		for _, b := range boundaries {
			if pos < b.start {
				break
			}
			page = b.pageNumber
		}
		return page
	}

	step := c.Size - c.Overlap
	var chunks []models.Chunk
	for start := 0; start < len(text); start += step {
		end := start + c.Size
		if end > len(text) {
			end = len(text)
		}
		content := string(text[start:end])
		if strings.TrimSpace(content) != "" {
			chunks = append(chunks, models.NewChunk(content, "", pageAt(start)))
		}
		if end == len(text) {
			break
		}
	}

	return chunks, nil
}

const structurePrompt = `Split the following military manual page text into its structural sections.
Return ONLY a JSON array where every element has exactly two string fields:
"section" (the section heading) and "content" (the section text).

Text:
%s

JSON: `

// StructureChunker asks the completion provider to partition each page into
// labeled sections. The response is untrusted input: anything that does not
// parse as the expected JSON array turns the whole page into a single
// unlabeled chunk, so no page text is ever dropped.
//
// One provider call is issued per page, so ingestion cost and latency scale
// linearly with page count. This is the primary scalability risk of
// structure-aware ingestion; the service prefers fixed windows for large
// documents.
type StructureChunker struct {
	completer Completer
}

// NewStructureChunker creates a structure-aware chunker over the given provider.
func NewStructureChunker(completer Completer) *StructureChunker {
	return &StructureChunker{completer: completer}
}

func (c *StructureChunker) Split(pages []models.PageRecord) ([]models.Chunk, error) {
	var chunks []models.Chunk
	for _, page := range pages {
		if strings.TrimSpace(page.Text) == "" {
			continue
		}

		resp, err := c.completer.Complete(fmt.Sprintf(structurePrompt, page.Text), 0)
		if err != nil {
			log.Printf("Warning: structural split failed on page %d, keeping page as one chunk: %v", page.PageNumber, err)
			chunks = append(chunks, models.NewChunk(page.Text, "", page.PageNumber))
			continue
		}

		sections, ok := parseSections(resp)
		if !ok {
			chunks = append(chunks, models.NewChunk(page.Text, "", page.PageNumber))
			continue
		}

		for _, s := range sections {
			content := strings.TrimSpace(s.Content)
			if content == "" {
				// Empty-content entries are discarded silently
				continue
			}
			chunks = append(chunks, models.NewChunk(content, strings.TrimSpace(s.Section), page.PageNumber))
		}
	}
	return chunks, nil
}

type section struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

// parseSections strictly parses the model response as a JSON array of
// {section, content} objects, tolerating a surrounding markdown code fence.
func parseSections(raw string) ([]section, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var sections []section
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, false
	}
	return sections, true
}
