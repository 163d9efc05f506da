package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// unitVocab is the closed set of volume-unit tokens recognized on
// invoice lines.
var unitVocab = map[string]struct{}{
	"pint": {}, "pints": {}, "pt": {},
	"quart": {}, "quarts": {}, "qt": {},
	"gallon": {}, "gallons": {}, "gal": {},
}

// embeddedUnitWords is ordered longest-first so the full unit name
// wins over its abbreviation when both appear in a fused token.
var embeddedUnitWords = []string{
	"gallons", "gallon", "quarts", "quart", "pints", "pint", "gal", "qt", "pt",
}

var (
	nonNumericChars  = regexp.MustCompile(`[^0-9.]`)
	waCodePattern    = regexp.MustCompile(`^(?i:WA)\d{3,5}$`)
	shortCodePattern = regexp.MustCompile(`^[A-Za-z0-9]{2,6}$`)
)

// findKeyword returns the index of the first token equal to keyword,
// ignoring case, or -1 when the keyword is absent.
func findKeyword(tokens []string, keyword string) int {
	for i, t := range tokens {
		if strings.EqualFold(t, keyword) {
			return i
		}
	}
	return -1
}

// findFirstNumber scans tokens in (from, from+window) for the first
// token that parses as a number once non-numeric characters are
// stripped. from may be -1 to search from line start.
func findFirstNumber(tokens []string, from, window int) (int, float64, bool) {
	for i := from + 1; i < from+window && i < len(tokens); i++ {
		stripped := nonNumericChars.ReplaceAllString(tokens[i], "")
		if !strings.ContainsAny(stripped, "0123456789") {
			continue
		}
		if v, err := strconv.ParseFloat(stripped, 64); err == nil {
			return i, v, true
		}
	}
	return -1, 0, false
}

// findUnit scans tokens in (from, from+window) for an exact match
// against the unit vocabulary.
func findUnit(tokens []string, from, window int) (int, string, bool) {
	for i := from + 1; i < from+window && i < len(tokens); i++ {
		if _, ok := unitVocab[strings.ToLower(tokens[i])]; ok {
			return i, tokens[i], true
		}
	}
	return -1, "", false
}

// embeddedUnit reports a unit word carried inside a larger token, a
// recovery for OCR output that fuses the quantity and unit together.
func embeddedUnit(token string) (string, bool) {
	t := strings.ToLower(token)
	for _, u := range embeddedUnitWords {
		if strings.Contains(t, u) {
			return u, true
		}
	}
	return "", false
}

// findCodeToken scans from from to line end for a product code. The
// WA-prefixed family is preferred over the generic short alphanumeric
// shape; the generic pattern is consulted only when no WA code exists
// anywhere in the remainder of the line.
func findCodeToken(tokens []string, from int) (int, string, bool) {
	for i := from; i < len(tokens); i++ {
		if waCodePattern.MatchString(tokens[i]) {
			return i, tokens[i], true
		}
	}
	for i := from; i < len(tokens); i++ {
		if shortCodePattern.MatchString(tokens[i]) {
			return i, tokens[i], true
		}
	}
	return -1, "", false
}
