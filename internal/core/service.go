// ABOUTME: Pipeline service exposing BuildKnowledgeBase and AskQuestion
// ABOUTME: Owns the single in-memory index slot with atomic swap on rebuild
package core

import (
	"fmt"
	"sync"

	"github.com/harper/manualqa/internal/config"
	"github.com/harper/manualqa/internal/models"
	"github.com/harper/manualqa/internal/storage"
)

// Service wires the ingestion pipeline and the question pipeline around the
// process-wide knowledge base slot. A build fully replaces the previous
// index; there is no merge, no versioning, and no persistence across
// restarts. Concurrent questions during a rebuild observe either the
// fully-old or the fully-new index, never a partial one.
type Service struct {
	cfg         *config.Config
	indexer     *Indexer
	router      *Router
	synthesizer *Synthesizer
	completer   Completer

	// load is the PDF parsing boundary, replaceable in tests
	load func(data []byte) ([]models.PageRecord, error)

	mu    sync.RWMutex
	index *storage.Index
}

// Provider bundles the two capabilities the pipeline needs from the
// embedding/completion service.
type Provider interface {
	Embedder
	Completer
}

// NewService creates a pipeline service over the given provider.
func NewService(cfg *config.Config, provider Provider) *Service {
	return &Service{
		cfg:         cfg,
		indexer:     NewIndexer(provider),
		router:      NewRouter(provider),
		synthesizer: NewSynthesizer(provider, provider, cfg.RetrievalK),
		completer:   provider,
		load:        LoadPDF,
	}
}

// BuildKnowledgeBase ingests a PDF manual: load pages, chunk, enrich with
// the manual title, embed, and swap the new index into the slot. Returns a
// status line for the shell. The build runs entirely off-lock; only the
// final pointer swap takes the write lock.
func (s *Service) BuildKnowledgeBase(data []byte) (string, error) {
	pages, err := s.load(data)
	if err != nil {
		return "", err
	}

	title := ExtractManualTitle(pages)

	chunks, err := s.splitPages(pages)
	if err != nil {
		return "", err
	}
	chunks = EnrichChunks(chunks, title)

	index, err := s.indexer.Build(chunks)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()

	return fmt.Sprintf("Stored %d chunks from %q in the knowledge base.", index.Len(), title), nil
}

// splitPages picks the chunking strategy and applies the document-level
// fallback: a structure-aware pass that produces zero chunks falls back to
// fixed windows over the whole document.
func (s *Service) splitPages(pages []models.PageRecord) ([]models.Chunk, error) {
	structural := false
	switch s.cfg.ChunkStrategy {
	case config.StrategyStructure:
		structural = true
	case config.StrategyAuto:
		// One completion call per page makes structural splitting too
		// slow and expensive for large manuals
		structural = len(pages) <= s.cfg.StructureMaxPages
	}

	if structural {
		chunks, err := NewStructureChunker(s.completer).Split(pages)
		if err != nil {
			return nil, err
		}
		if len(chunks) > 0 {
			return chunks, nil
		}
	}

	return NewFixedWindowChunker(s.cfg.ChunkSize, s.cfg.ChunkOverlap).Split(pages)
}

// AskQuestion routes the question to a domain and synthesizes an answer
// from the current knowledge base. Returns ErrNoKnowledgeBase when no
// upload has succeeded yet; callers check it with errors.Is and show the
// advisory message instead of an error.
func (s *Service) AskQuestion(question string) (models.QueryResult, error) {
	s.mu.RLock()
	index := s.index
	s.mu.RUnlock()

	if index == nil {
		return models.QueryResult{}, ErrNoKnowledgeBase
	}

	label := s.router.Classify(question)

	return s.synthesizer.Answer(question, label, index)
}

// HasKnowledgeBase reports whether a manual has been ingested.
func (s *Service) HasKnowledgeBase() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}
