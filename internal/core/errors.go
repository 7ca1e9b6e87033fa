// ABOUTME: Typed pipeline errors for ingestion, embedding, and generation
// ABOUTME: ErrNoKnowledgeBase is an expected state, not a provider failure
package core

import "errors"

// ErrNoKnowledgeBase is returned by AskQuestion before any successful upload.
// It is a routine precondition, checked with errors.Is; the presentation
// shell maps it to an advisory message rather than an error display.
var ErrNoKnowledgeBase = errors.New("no knowledge base loaded")

// IngestError reports an unreadable PDF or a document with no extractable text.
type IngestError struct {
	Reason string
	Err    error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return "ingest: " + e.Reason + ": " + e.Err.Error()
	}
	return "ingest: " + e.Reason
}

func (e *IngestError) Unwrap() error { return e.Err }

// EmbeddingError reports an embedding provider failure during indexing.
type EmbeddingError struct {
	Reason string
	Err    error
}

func (e *EmbeddingError) Error() string {
	if e.Err != nil {
		return "embedding: " + e.Reason + ": " + e.Err.Error()
	}
	return "embedding: " + e.Reason
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// GenerationError reports a completion provider failure during answer
// synthesis. The caller decides whether to retry the whole question.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return "generation: " + e.Reason + ": " + e.Err.Error()
	}
	return "generation: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Err }
