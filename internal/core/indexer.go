// ABOUTME: Embedding indexer - converts chunks into a searchable vector index
// ABOUTME: Batch-embeds chunk content and preserves the chunk/vector mapping
package core

import (
	"github.com/harper/manualqa/internal/models"
	"github.com/harper/manualqa/internal/storage"
)

// Indexer builds knowledge base indexes from enriched chunks.
type Indexer struct {
	embedder Embedder
}

// NewIndexer creates an indexer over the given embedding provider.
func NewIndexer(embedder Embedder) *Indexer {
	return &Indexer{embedder: embedder}
}

// Build embeds every chunk and assembles the similarity index. The mapping
// from each vector back to its chunk is positional and stable, so retrieval
// results carry full citation metadata.
func (ix *Indexer) Build(chunks []models.Chunk) (*storage.Index, error) {
	if len(chunks) == 0 {
		return nil, &EmbeddingError{Reason: "no chunks to index"}
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := ix.embedder.GenerateEmbeddings(texts)
	if err != nil {
		return nil, &EmbeddingError{Reason: "embedding provider failed", Err: err}
	}

	index, err := storage.NewIndex(chunks, vectors)
	if err != nil {
		return nil, &EmbeddingError{Reason: "assembling index", Err: err}
	}
	return index, nil
}
