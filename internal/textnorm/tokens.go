package textnorm

import "regexp"

var nonWordRun = regexp.MustCompile(`\W+`)

// Tokens splits s on runs of non-word characters, dropping empties.
func Tokens(s string) []string {
	parts := nonWordRun.Split(s, -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TokenOverlap counts tokens of a that also occur in b. Zero when either
// side has no tokens.
func TokenOverlap(a, b string) int {
	at := Tokens(a)
	bt := Tokens(b)
	if len(at) == 0 || len(bt) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(bt))
	for _, t := range bt {
		set[t] = struct{}{}
	}
	overlap := 0
	for _, t := range at {
		if _, ok := set[t]; ok {
			overlap++
		}
	}
	return overlap
}
