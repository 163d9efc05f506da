package extract

import (
	"regexp"
	"strings"
)

// LineItem is one paint product recovered from a candidate invoice line.
type LineItem struct {
	Make     string
	Code     string
	Color    string
	Quantity float64
	Unit     string
}

// brandWords are paint manufacturer names filtered out of the make span.
var brandWords = map[string]struct{}{
	"mipa": {}, "ppg": {}, "basf": {}, "sherwin": {},
	"dupont": {}, "spi": {}, "standox": {},
}

var trailingPricePattern = regexp.MustCompile(`^\d+\.\d{2}$`)

// Anchor searches are bounded so unrelated numbers and words far away
// in a noisy line cannot be claimed.
const (
	quantityWindow = 6
	unitWindow     = 4
)

// ParseLineItem extracts a structured paint item from one candidate
// line. Invoices lose their column layout under OCR, so fields are
// located by landmark: the "paint" keyword, then the quantity, then a
// constrained unit vocabulary, then a constrained code shape. The
// unconstrained fields are the token spans between those anchors.
//
// Returns nil when the mandatory quantity and unit anchors are absent;
// all other fields degrade to empty or default values. Never fails on
// malformed input.
func ParseLineItem(line string) *LineItem {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	kw := findKeyword(tokens, "paint")

	qtyIdx, qty, ok := findFirstNumber(tokens, kw, quantityWindow)
	if !ok {
		return nil
	}

	unitIdx, rawUnit, ok := findUnit(tokens, qtyIdx, unitWindow)
	if !ok {
		// OCR sometimes fuses the quantity and unit into one token.
		rawUnit, ok = embeddedUnit(tokens[qtyIdx])
		if !ok {
			return nil
		}
		unitIdx = qtyIdx
	}

	codeIdx, code, found := findCodeToken(tokens, unitIdx+1)
	if !found {
		codeIdx = len(tokens)
	}

	return &LineItem{
		Make:     deriveMake(tokens, kw, qtyIdx, unitIdx, codeIdx),
		Code:     code,
		Color:    deriveColor(tokens, codeIdx),
		Quantity: qty,
		Unit:     NormalizeUnit(rawUnit),
	}
}

// deriveMake joins the tokens between the unit and the code, dropping
// known brand words; falls back to the span between the keyword and
// the quantity, then to "Unknown".
func deriveMake(tokens []string, kw, qtyIdx, unitIdx, codeIdx int) string {
	if m := joinWithoutBrands(tokens[unitIdx+1 : codeIdx]); m != "" {
		return m
	}
	if m := joinWithoutBrands(tokens[kw+1 : qtyIdx]); m != "" {
		return m
	}
	return "Unknown"
}

// deriveColor joins every token after the code, dropping a trailing
// two-decimal price column as noise.
func deriveColor(tokens []string, codeIdx int) string {
	if codeIdx+1 >= len(tokens) {
		return ""
	}
	span := tokens[codeIdx+1:]
	if trailingPricePattern.MatchString(span[len(span)-1]) {
		span = span[:len(span)-1]
	}
	return strings.Join(span, " ")
}

func joinWithoutBrands(tokens []string) string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, brand := brandWords[strings.ToLower(t)]; !brand {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, " ")
}
