// ABOUTME: Tests for citation rendering with missing-metadata sentinels
// ABOUTME: Missing title renders "(PDF)", missing page renders "?"
package models

import "testing"

func TestCitation_String(t *testing.T) {
	tests := []struct {
		name     string
		citation Citation
		want     string
	}{
		{
			name:     "full metadata",
			citation: Citation{SourceTitle: "Field Manual 3-21", PageNumber: 12},
			want:     "Field Manual 3-21 p.12",
		},
		{
			name:     "missing title",
			citation: Citation{SourceTitle: "", PageNumber: 3},
			want:     "(PDF) p.3",
		},
		{
			name:     "missing page",
			citation: Citation{SourceTitle: "Field Manual 3-21", PageNumber: 0},
			want:     "Field Manual 3-21 p.?",
		},
		{
			name:     "missing everything",
			citation: Citation{},
			want:     "(PDF) p.?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.citation.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
