package extract

import "strings"

// Summary is the flat record produced by one extraction pass over an
// OCR transcript. It is constructed once and never mutated.
type Summary struct {
	Supplier      string   `json:"supplier"`
	InvoiceNumber string   `json:"invoice_number"`
	Cost          *float64 `json:"cost"`
	Notes         string   `json:"notes"`
}

// rawTextExcerptLen bounds the final notes fallback when no paint line
// can be found anywhere in the transcript.
const rawTextExcerptLen = 800

// Summarize runs every field extractor over the transcript and merges
// the results. Each extractor is independent and total: malformed or
// empty input degrades to empty fields, never an error.
func Summarize(text string) Summary {
	lines := splitLines(text)

	return Summary{
		Supplier:      ExtractSupplier(lines),
		InvoiceNumber: ExtractInvoiceNumber(lines),
		Cost:          ExtractTotal(text),
		Notes:         buildNotes(text, lines),
	}
}

// splitLines breaks a transcript into trimmed, non-empty lines in
// document order. All extractors index into this view.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
