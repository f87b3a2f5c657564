// Package util contains small helpers shared across layers.
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after NFD decomposition, so that
// "Zürich" and "Zurich" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lower-cases a string, strips diacritics, and collapses
// runs of whitespace to single spaces. All address field comparisons
// during verification go through this, so "São Paulo " and "sao paulo"
// compare equal.
func NormalizeText(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Fall back to the raw string; comparison is then stricter,
		// never wrong.
		folded = s
	}

	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// TextEqual reports whether two strings are equal after normalization.
func TextEqual(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}
