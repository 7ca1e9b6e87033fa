// ABOUTME: Provider interfaces consumed by the pipeline
// ABOUTME: Satisfied by llm.OpenAIClient, mocked in tests
package core

import "github.com/harper/manualqa/internal/models"

// Embedder converts text into embedding vectors.
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
	GenerateEmbeddings(texts []string) ([][]float64, error)
}

// Completer sends a prompt to the completion provider and returns raw text.
type Completer interface {
	Complete(prompt string, temperature float32) (string, error)
}

// Chunker splits loaded pages into retrieval chunks.
type Chunker interface {
	Split(pages []models.PageRecord) ([]models.Chunk, error)
}
