package textnorm

import (
	"strings"
	"unicode"
)

// Acronymize derives an acronym from a multi-word phrase, or recognizes a
// string that already is one. A short (2-6 rune) all-caps/digit token like
// "JNTU" is treated as a pre-existing acronym and returned lowercased;
// otherwise the first rune of every word is taken. Empty input yields "".
func Acronymize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if looksLikeAcronym(s) {
		return strings.ToLower(s)
	}

	var b strings.Builder
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if !inWord {
				b.WriteRune(unicode.ToLower(r))
				inWord = true
			}
			continue
		}
		inWord = false
	}
	return b.String()
}

// looksLikeAcronym reports whether s is 2-6 runes of uppercase letters and
// digits with nothing else.
func looksLikeAcronym(s string) bool {
	n := 0
	for _, r := range s {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
		n++
	}
	return n >= 2 && n <= 6
}
