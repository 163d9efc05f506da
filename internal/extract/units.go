package extract

import "strings"

// NormalizeUnit canonicalizes a volume-unit token to "Pint", "Quart"
// or "Gallon". Unrecognized tokens are returned unchanged.
func NormalizeUnit(token string) string {
	t := strings.ToLower(token)
	switch {
	case strings.HasPrefix(t, "pint") || t == "pt":
		return "Pint"
	case strings.HasPrefix(t, "quart") || t == "qt":
		return "Quart"
	case strings.HasPrefix(t, "gallon") || t == "gal":
		return "Gallon"
	}
	return token
}
