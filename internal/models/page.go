// ABOUTME: PageRecord represents one extracted PDF page with provenance
// ABOUTME: Produced by the document loader, consumed by chunkers
package models

// PageRecord is the text of a single PDF page plus its provenance.
// Page numbers are preserved exactly as the parser reports them (1-indexed)
// so citations stay accurate.
type PageRecord struct {
	Text        string `json:"text"`
	PageNumber  int    `json:"page_number"`
	SourceTitle string `json:"source_title,omitempty"`
}
