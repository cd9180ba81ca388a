package engine

import "strings"

// Normalize canonicalizes raw text for comparison: lower-case, strip
// question marks, commas, periods, exclamation marks and quotes, collapse
// runs of whitespace, trim. It is total and idempotent.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch r {
		case '?', ',', '.', '!', '\'', '"':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
