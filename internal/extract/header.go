package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// supplierScanLines bounds the supplier search to the document header.
const supplierScanLines = 10

// supplierSkipMarkers flag boilerplate header lines that cannot be a
// supplier name. "tucker" covers the shop's home locality, which OCR
// reliably places near the top of local supplier invoices.
var supplierSkipMarkers = []string{
	"invoice", "bill to", "ship to", "date", "total", "www", ".com", "tucker",
}

var (
	invoiceNumberPattern = regexp.MustCompile(`(?i)invoice\s*#\s*(\d+)`)
	totalPattern         = regexp.MustCompile(`(?i)total\s*\$\s*([\d,]+\.\d{2})`)
	amountDuePattern     = regexp.MustCompile(`(?i)(?:amount\s+due|balance\s+due)\s*:?\s*\$?\s*([\d,]+\.\d{2})`)
)

// ExtractSupplier scans the first lines of the document for the first
// non-boilerplate line with enough alphabetic content to be a business
// name. Falls back to the first line of the document.
func ExtractSupplier(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	limit := supplierScanLines
	if len(lines) < limit {
		limit = len(lines)
	}

scan:
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		for _, marker := range supplierSkipMarkers {
			if strings.Contains(lower, marker) {
				continue scan
			}
		}
		if alphaCount(line) >= 4 {
			return line
		}
	}
	return lines[0]
}

// ExtractInvoiceNumber prefers an explicit "Invoice # <digits>" match;
// failing that it returns the first line mentioning an invoice at all,
// then the empty string.
func ExtractInvoiceNumber(lines []string) string {
	for _, line := range lines {
		if m := invoiceNumberPattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "invoice") {
			return line
		}
	}
	return ""
}

// ExtractTotal locates the invoice total as a two-decimal dollar
// amount, trying "Total $" before "amount due"/"balance due". Returns
// nil when neither pattern yields a parseable amount.
func ExtractTotal(text string) *float64 {
	for _, p := range []*regexp.Regexp{totalPattern, amountDuePattern} {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return &v
	}
	return nil
}

func alphaCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
