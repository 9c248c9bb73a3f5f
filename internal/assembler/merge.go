package assembler

import (
	"github.com/rishi/placement-autofill/internal/textnorm"
	"github.com/rishi/placement-autofill/internal/types"
)

// mergeCandidates collapses candidates that refer to the same logical
// question: same grouping-root identity, or same normalized label. The
// higher-scored interpretation wins the key/value/chosen fields; option
// lists are unioned by label and source selectors accumulate so the apply
// layer can resolve every contributing control.
func mergeCandidates(in []types.Candidate) []types.Candidate {
	out := make([]types.Candidate, 0, len(in))
	index := make(map[string]int)

	keyOf := func(c *types.Candidate) string {
		if c.RootID != "" {
			return "root:" + c.RootID
		}
		return "label:" + textnorm.Normalize(c.Label)
	}

	for _, c := range in {
		k := keyOf(&c)
		at, seen := index[k]
		if !seen {
			index[k] = len(out)
			out = append(out, c)
			continue
		}
		out[at] = mergePair(out[at], c)
	}
	return out
}

// mergePair folds two candidates for one question into one.
func mergePair(a, b types.Candidate) types.Candidate {
	winner, loser := a, b
	if b.Score > a.Score {
		winner, loser = b, a
	}

	winner.Options = unionOptions(winner.Options, loser.Options)
	winner.Selectors = unionStrings(winner.Selectors, loser.Selectors)
	if winner.RootSelector == "" {
		winner.RootSelector = loser.RootSelector
	}
	return winner
}

func unionOptions(a, b []types.Option) []types.Option {
	seen := make(map[string]struct{}, len(a))
	for _, o := range a {
		seen[o.Label] = struct{}{}
	}
	for _, o := range b {
		if _, ok := seen[o.Label]; ok {
			continue
		}
		seen[o.Label] = struct{}{}
		a = append(a, o)
	}
	return a
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		seen[s] = struct{}{}
	}
	for _, s := range b {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		a = append(a, s)
	}
	return a
}
