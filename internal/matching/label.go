package matching

import (
	"strings"

	"github.com/rishi/placement-autofill/internal/types"
)

// Match is the outcome of mapping one question label to a profile field.
// Key is "" when nothing cleared the confidence floor; Score is still
// reported then for diagnostics.
type Match struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Score int    `json:"score"`
}

// MatchLabelToField maps a raw question label to the best-fitting profile
// field key using the alias table plus structural pattern corroboration.
// Pure: identical (label, profile) inputs always produce identical results.
func MatchLabelToField(label string, profile types.Profile) Match {
	q := strings.ToLower(label)
	patterns := DetectPatterns(q)

	best := Match{}
	for _, fa := range fieldAliases {
		bonus := patternBonus(fa.key, patterns)
		for _, alias := range fa.phrases {
			score := ScoreMatch(q, alias) + bonus
			if score > best.Score {
				best = Match{Key: fa.key, Value: profile.Get(fa.key), Score: score}
			}
		}
	}

	if best.Score < AliasMinScore {
		return Match{Score: best.Score}
	}
	return best
}

// patternBonus awards a fixed corroboration bonus when a structural pattern
// backs the candidate key.
func patternBonus(key string, p Patterns) int {
	switch key {
	case types.FieldEmail:
		if p.Email {
			return emailPatternBonus
		}
	case types.FieldPhone:
		if p.Phone {
			return phonePatternBonus
		}
	case types.FieldCGPA, types.FieldTenthPercent, types.FieldTwelfthPercent:
		if p.GPA || p.Percent {
			return gpaPatternBonus
		}
	case types.FieldResumeLink:
		if p.Resume {
			return resumePatternBonus
		}
	case types.FieldRelocate:
		if p.Relocate {
			return relocatePatternBonus
		}
	}
	return 0
}
