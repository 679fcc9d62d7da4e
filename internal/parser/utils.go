package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeColumnName trims, collapses internal whitespace to one space,
// lower-cases and strips diacritics, so "  Preț   NOU " becomes "pret nou".
func NormalizeColumnName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	name = strings.ToLower(name)
	return FoldDiacritics(name)
}

// FoldDiacritics removes combining marks (ș -> s, ț -> t, ă -> a).
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
