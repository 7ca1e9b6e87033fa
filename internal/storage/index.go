// ABOUTME: In-memory knowledge base index with cosine similarity search
// ABOUTME: Holds chunk/vector pairs for one uploaded manual, immutable after build
package storage

import (
	"fmt"
	"math"
	"sort"

	"github.com/harper/manualqa/internal/models"
)

// SearchResult is a matching chunk with its similarity score.
type SearchResult struct {
	Chunk models.Chunk
	Score float64
}

type entry struct {
	chunk  models.Chunk
	vector []float64
}

// Index maps chunks to their embedding vectors and answers top-k similarity
// queries. It is immutable once built; a new upload builds a new Index and
// the service swaps the whole thing.
type Index struct {
	entries   []entry
	dimension int
	title     string
}

// NewIndex builds an index from parallel chunk and vector slices.
// Every vector must share the dimension of the first.
func NewIndex(chunks []models.Chunk, vectors [][]float64) (*Index, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("cannot build index from zero chunks")
	}
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunk/vector length mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}

	dim := len(vectors[0])
	entries := make([]entry, len(chunks))
	for i := range chunks {
		if len(vectors[i]) != dim {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(vectors[i]), dim)
		}
		entries[i] = entry{chunk: chunks[i], vector: vectors[i]}
	}

	title := chunks[0].SourceTitle

	return &Index{entries: entries, dimension: dim, title: title}, nil
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int { return len(ix.entries) }

// Dimension returns the embedding dimension of the index.
func (ix *Index) Dimension() int { return ix.dimension }

// SourceTitle returns the manual title the index was built from.
func (ix *Index) SourceTitle() string { return ix.title }

// Search returns the k most similar chunks to the query vector, ranked by
// cosine similarity descending.
func (ix *Index) Search(query []float64, k int) []SearchResult {
	if k <= 0 {
		return nil
	}

	results := make([]SearchResult, 0, len(ix.entries))
	for _, e := range ix.entries {
		results = append(results, SearchResult{
			Chunk: e.chunk,
			Score: cosineSimilarity(query, e.vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

// cosineSimilarity calculates cosine similarity between two vectors
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
