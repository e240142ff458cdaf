package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize normalizes a string for comparison against catalog keys
func Normalize(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Remove accents
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	// Remove extra whitespace
	s = strings.Join(strings.Fields(s), " ")

	// Trim
	s = strings.TrimSpace(s)

	return s
}

// Capitalize upper-cases the first rune and lower-cases the rest,
// matching how car names are rendered in chat replies.
func Capitalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
