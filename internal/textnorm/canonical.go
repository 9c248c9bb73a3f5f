package textnorm

import (
	"regexp"
	"strings"
)

// synonymFold is one domain-synonym substitution applied to normalized text.
// The table is deliberately open: new folds slot in without touching the
// algorithm. Order matters, longest phrases first, so "computer science and
// engineering" wins over the bare "computer science".
type synonymFold struct {
	pattern *regexp.Regexp
	repl    string
}

var synonymFolds = []synonymFold{
	{regexp.MustCompile(`\belectrical and electronics engineering\b`), "eee"},
	{regexp.MustCompile(`\bcomputer science and engineering\b`), "cse"},
	{regexp.MustCompile(`\bcomputer science engineering\b`), "cse"},
	{regexp.MustCompile(`\bcomputer science\b`), "cse"},
	{regexp.MustCompile(`\bartificial intelligence and machine learning\b`), "ai ml"},
	{regexp.MustCompile(`\bcivil engineering\b`), "civil"},
	{regexp.MustCompile(`\belectrical engineering\b`), "ee"},
	{regexp.MustCompile(`\bmechanical engineering\b`), "me"},
	{regexp.MustCompile(`\binformation technology\b`), "it"},
	{regexp.MustCompile(`\bbachelor of technology\b`), "btech"},
	{regexp.MustCompile(`\bmaster of technology\b`), "mtech"},
	{regexp.MustCompile(`\bb tech\b`), "btech"},
	{regexp.MustCompile(`\bm tech\b`), "mtech"},
	{regexp.MustCompile(`\bmech\b`), "me"},
	{regexp.MustCompile(`\bcse aiml\b`), "cse ai ml"},
	{regexp.MustCompile(`\baiml\b`), "ai ml"},
}

// Canonicalize is Normalize plus domain-synonym folding ("B.Tech" and
// "Bachelor of Technology" both end up as "btech", "Computer Science (and
// Engineering)" as "cse"). Idempotent: Canonicalize(Canonicalize(s)) ==
// Canonicalize(s).
func Canonicalize(s string) string {
	// ampersand folds to "and" before scrub would discard it
	s = strings.ReplaceAll(s, "&", " and ")
	s = collapse(scrub(s))
	for _, f := range synonymFolds {
		s = f.pattern.ReplaceAllString(s, f.repl)
	}
	return collapse(s)
}
