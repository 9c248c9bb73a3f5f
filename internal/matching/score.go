package matching

import (
	"math"
	"strings"

	"github.com/rishi/placement-autofill/internal/textnorm"
)

// ScoreMatch scores how well a question label fits one alias phrase. A
// verbatim (normalized) substring hit earns a flat bonus regardless of alias
// length; otherwise whole-token overlap dominates with a small credit for
// prefix pairs ("enrol" vs "enrollment").
func ScoreMatch(question, alias string) int {
	q := textnorm.Normalize(question)
	kw := textnorm.Normalize(alias)
	if q == "" || kw == "" {
		return 0
	}
	if strings.Contains(q, kw) {
		return AliasSubstringScore
	}

	qTokens := textnorm.Tokens(q)
	kwTokens := textnorm.Tokens(kw)

	overlap := 0
	for _, t := range kwTokens {
		for _, qt := range qTokens {
			if t == qt {
				overlap++
				break
			}
		}
	}

	partial := 0.0
	for _, t := range kwTokens {
		for _, qt := range qTokens {
			if strings.HasPrefix(qt, t) || strings.HasPrefix(t, qt) {
				partial += 0.5
				break
			}
		}
	}

	return overlap*aliasTokenWeight + int(math.Floor(partial*aliasPrefixWeight))
}

// MatchScore scores a profile value (the query) against one option (the
// document). optionCanonical must be the pre-computed Canonicalize of the
// option label; optionRaw is the raw label, needed for acronym detection.
//
// Exact canonical equality and acronym equality short-circuit with maximal
// confidence; otherwise the score rewards proportionally tight token
// overlap and penalizes verbose options that only partially match.
// Pure and deterministic: identical inputs always yield identical scores.
func MatchScore(profileValue, optionCanonical, optionRaw string) int {
	pv := textnorm.Canonicalize(profileValue)
	if pv == "" || optionCanonical == "" {
		return 0
	}
	if pv == optionCanonical {
		return ScoreExact
	}

	if pa, oa := textnorm.Acronymize(profileValue), textnorm.Acronymize(optionRaw); pa != "" && pa == oa {
		return ScoreAcronym
	}

	overlap := textnorm.TokenOverlap(pv, optionCanonical)
	if overlap == 0 {
		return 0
	}

	optTokens := len(textnorm.Tokens(optionCanonical))
	pvTokens := len(textnorm.Tokens(pv))

	score := float64(overlap * overlapWeight)
	score += math.Round(float64(overlap) / float64(optTokens) * optionProportionBias)
	score -= float64(max(0, optTokens-overlap) * verbosityPenalty)
	score += math.Round(float64(overlap) / float64(pvTokens) * queryProportionBias)
	if score < 0 {
		return 0
	}
	return int(score)
}
