// ABOUTME: Retrieval-answer synthesizer - top-k retrieval plus grounded completion
// ABOUTME: Citations come from the same chunks used for generation, in rank order
package core

import (
	"fmt"
	"strings"

	"github.com/harper/manualqa/internal/models"
	"github.com/harper/manualqa/internal/storage"
)

// Synthesizer answers questions from the knowledge base index.
type Synthesizer struct {
	embedder  Embedder
	completer Completer
	topK      int
}

// NewSynthesizer creates a synthesizer retrieving topK chunks per question.
func NewSynthesizer(embedder Embedder, completer Completer, topK int) *Synthesizer {
	if topK <= 0 {
		topK = 3
	}
	return &Synthesizer{embedder: embedder, completer: completer, topK: topK}
}

// Answer retrieves the chunks most similar to the question, asks the
// completion provider for an answer grounded only in those chunks, and
// returns the answer with citations in retrieval order. The index is never
// mutated. Provider failures surface as *GenerationError; retrieval is not
// retried here - the caller decides whether to retry the whole question.
func (s *Synthesizer) Answer(question string, label models.DomainLabel, index *storage.Index) (models.QueryResult, error) {
	queryVector, err := s.embedder.GenerateEmbedding(question)
	if err != nil {
		return models.QueryResult{}, &GenerationError{Reason: "embedding question", Err: err}
	}

	results := index.Search(queryVector, s.topK)

	answer, err := s.completer.Complete(s.buildPrompt(question, label, results), 0)
	if err != nil {
		return models.QueryResult{}, &GenerationError{Reason: "completion provider failed", Err: err}
	}

	citations := make([]models.Citation, 0, len(results))
	for _, r := range results {
		citations = append(citations, models.Citation{
			SourceTitle: r.Chunk.SourceTitle,
			PageNumber:  r.Chunk.PageNumber,
		})
	}

	return models.QueryResult{Answer: strings.TrimSpace(answer), Citations: citations}, nil
}

func (s *Synthesizer) buildPrompt(question string, label models.DomainLabel, results []storage.SearchResult) string {
	var b strings.Builder

	b.WriteString("You are an assistant answering questions about a military manual.\n")
	b.WriteString("Answer using ONLY the manual excerpts below. If the answer is not in the excerpts, say so clearly.\n\n")
	b.WriteString("Manual excerpts:\n")
	for i, r := range results {
		b.WriteString(fmt.Sprintf("\nExcerpt %d (page %d", i+1, r.Chunk.PageNumber))
		if r.Chunk.SectionLabel != "" {
			b.WriteString(", section: " + r.Chunk.SectionLabel)
		}
		b.WriteString("):\n")
		b.WriteString(r.Chunk.Content)
		b.WriteString("\n---\n")
	}
	b.WriteString(fmt.Sprintf("\n[%s] domain question: %s\n", label, question))
	b.WriteString("\nAnswer: ")

	return b.String()
}
