// Package textnorm provides the text canonicalization primitives the
// matching engine is built on: normalization, domain-synonym folding,
// acronym extraction and token overlap.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes, so
// "résumé" and "resume" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text: lowercase, diacritics stripped, dashes
// turned into spaces, all other punctuation removed, whitespace collapsed.
// It is total: any input produces a (possibly empty) string.
func Normalize(s string) string {
	return collapse(scrub(s))
}

// scrub performs every Normalize step except the final whitespace collapse,
// so Canonicalize can fold synonyms on the scrubbed text first.
func scrub(s string) string {
	if s == "" {
		return ""
	}
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '-' || r == '–' || r == '—':
			b.WriteByte(' ')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			// drop all other punctuation and symbols
		}
	}
	return b.String()
}

// collapse reduces whitespace runs to single spaces and trims.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
