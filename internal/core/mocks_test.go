// ABOUTME: Shared fake providers for pipeline tests
// ABOUTME: Deterministic embedder plus a scripted completion provider
package core

import (
	"errors"

	"github.com/harper/manualqa/internal/models"
)

// fakeEmbedder returns canned vectors keyed by input text.
type fakeEmbedder struct {
	vectors  map[string][]float64
	fallback []float64
	err      error
}

func (f *fakeEmbedder) GenerateEmbedding(text string) ([]float64, error) {
	vectors, err := f.GenerateEmbeddings([]string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (f *fakeEmbedder) GenerateEmbeddings(texts []string) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(texts))
	for i, text := range texts {
		if vec, ok := f.vectors[text]; ok {
			out[i] = vec
		} else if f.fallback != nil {
			out[i] = f.fallback
		} else {
			return nil, errors.New("no canned vector for input")
		}
	}
	return out, nil
}

// scriptedCompleter replays canned responses in call order and records
// every prompt and temperature it sees.
type scriptedCompleter struct {
	responses []string
	errs      []error
	prompts   []string
	temps     []float32
}

func (f *scriptedCompleter) Complete(prompt string, temperature float32) (string, error) {
	call := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	f.temps = append(f.temps, temperature)

	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	return "", errors.New("scripted completer exhausted")
}

// fakeProvider satisfies core.Provider for service tests.
type fakeProvider struct {
	*fakeEmbedder
	*scriptedCompleter
}

func pagesFixture() []models.PageRecord {
	return []models.PageRecord{
		{Text: "Field Manual 3-21\nChapter 1 covers supply procedures for infantry units.", PageNumber: 1},
		{Text: "Resupply requests flow through the battalion S4 section.", PageNumber: 2},
		{Text: "Vehicle maintenance schedules are tracked weekly.", PageNumber: 3},
	}
}
