package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// CollectLineItems runs the line item parser over every candidate line
// in the transcript, preserving document order.
func CollectLineItems(lines []string) []LineItem {
	items := make([]LineItem, 0)
	for _, line := range lines {
		if !isCandidateLine(line) {
			continue
		}
		if item := ParseLineItem(line); item != nil {
			items = append(items, *item)
		}
	}
	return items
}

// isCandidateLine is the cheap filter run before structured parsing:
// the line must mention paint, carry a digit, and carry a unit word.
// The unit check is by containment, not exact token match, so lines
// where OCR fused the quantity and unit together still qualify.
func isCandidateLine(line string) bool {
	lower := strings.ToLower(line)
	if !strings.Contains(lower, "paint") {
		return false
	}
	if !strings.ContainsAny(line, "0123456789") {
		return false
	}
	for _, t := range strings.Fields(lower) {
		if _, ok := unitVocab[t]; ok {
			return true
		}
		if _, ok := embeddedUnit(t); ok {
			return true
		}
	}
	return false
}

// FormatLineItem renders one item for the notes field.
func FormatLineItem(item LineItem) string {
	qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	return fmt.Sprintf("%s | %s | %s | %s %s", item.Make, item.Code, item.Color, qty, item.Unit)
}

// buildNotes assembles the notes field with a fixed preference order:
// structured items, then raw lines mentioning paint, then a bounded
// excerpt of the transcript.
func buildNotes(text string, lines []string) string {
	items := CollectLineItems(lines)
	if len(items) > 0 {
		formatted := make([]string, len(items))
		for i, item := range items {
			formatted[i] = FormatLineItem(item)
		}
		return strings.Join(formatted, "\n")
	}

	loose := make([]string, 0)
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "paint") {
			loose = append(loose, line)
		}
	}
	if len(loose) > 0 {
		return strings.Join(loose, "\n")
	}

	if len(text) > rawTextExcerptLen {
		return text[:rawTextExcerptLen]
	}
	return text
}
