// ABOUTME: PDF document loader producing one PageRecord per page
// ABOUTME: Writes bytes to a temp file because the parser needs path access
package core

import (
	"log"
	"os"
	"strings"

	"github.com/harper/manualqa/internal/models"
	"github.com/ledongthuc/pdf"
)

// LoadPDF parses raw PDF bytes into page records, in document order.
// The parser requires file-path access, so the bytes are written to a
// temporary file that is removed on every path out of this function.
func LoadPDF(data []byte) ([]models.PageRecord, error) {
	if len(data) == 0 {
		return nil, &IngestError{Reason: "empty file"}
	}

	tmp, err := os.CreateTemp("", "manualqa-*.pdf")
	if err != nil {
		return nil, &IngestError{Reason: "creating temp file", Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, &IngestError{Reason: "writing temp file", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &IngestError{Reason: "closing temp file", Err: err}
	}

	f, reader, err := pdf.Open(tmpPath)
	if err != nil {
		return nil, &IngestError{Reason: "not a valid PDF", Err: err}
	}
	defer f.Close()

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return nil, &IngestError{Reason: "PDF has no pages"}
	}

	pages := make([]models.PageRecord, 0, pageCount)
	extracted := false
	for i := 1; i <= pageCount; i++ {
		text := ""
		page := reader.Page(i)
		if !page.V.IsNull() {
			text, err = page.GetPlainText(nil)
			if err != nil {
				// Keep the page so numbering stays aligned with the document
				log.Printf("Warning: failed to extract text from page %d: %v", i, err)
				text = ""
			}
		}
		if strings.TrimSpace(text) != "" {
			extracted = true
		}
		pages = append(pages, models.PageRecord{Text: text, PageNumber: i})
	}

	if !extracted {
		return nil, &IngestError{Reason: "PDF contains no extractable text"}
	}

	return pages, nil
}
