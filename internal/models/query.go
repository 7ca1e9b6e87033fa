// ABOUTME: QueryResult and Citation returned by the answer synthesizer
// ABOUTME: Transient values handed straight back to the presentation shell
package models

import "fmt"

// Citation points at the manual passage an answer was grounded on.
type Citation struct {
	SourceTitle string `json:"source_title"`
	PageNumber  int    `json:"page_number"`
}

// String renders the citation for display. Missing metadata falls back to
// literal sentinels: "(PDF)" for the title and "?" for the page.
func (c Citation) String() string {
	title := c.SourceTitle
	if title == "" {
		title = "(PDF)"
	}
	page := "?"
	if c.PageNumber > 0 {
		page = fmt.Sprintf("%d", c.PageNumber)
	}
	return fmt.Sprintf("%s p.%s", title, page)
}

// QueryResult is the structured answer to one question. Citations are
// ordered by retrieval rank, highest similarity first.
type QueryResult struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}
