// Package matching implements the field-matching heuristics: the alias
// dictionary, content-pattern detection, the option scorers and the guard
// policies that decide whether a question may be auto-answered at all.
package matching

// Score constants. These are empirically tuned golden values; changing any
// of them silently changes which field wins close contests, so they live in
// one place and are pinned by regression tests.
const (
	// ScoreExact is returned when a profile value equals an option's
	// canonical form exactly.
	ScoreExact = 10000

	// ScoreAcronym is returned when the acronym forms of profile value and
	// option label agree.
	ScoreAcronym = 9000

	// AliasMinScore is the floor under which MatchLabelToField reports no
	// match. Deliberately lower than TextMinScore: pattern signals are
	// sparse but independently trustworthy.
	AliasMinScore = 38

	// AliasSubstringScore is the flat bonus for an alias appearing verbatim
	// inside the question, independent of alias length.
	AliasSubstringScore = 70

	// TextFallbackScore is assigned to text candidates matched by the
	// SimpleMatch cascade.
	TextFallbackScore = 50

	// InputTypeHintScore is assigned when only the HTML input type
	// (email/tel) identified the field.
	InputTypeHintScore = 60

	// CollegeDirectScore is assigned when the combined label plainly names
	// an institution and the alias matcher missed it.
	CollegeDirectScore = 70

	// CollegeRescueScore is assigned by the post-pass that force-fills
	// unmatched institution questions.
	CollegeRescueScore = 65

	// SelectChosenScore is the confidence recorded for a select candidate
	// once an option has been chosen.
	SelectChosenScore = 50

	// BacklogNumericScore short-circuits option scoring when a backlog
	// count digit appears verbatim in an option.
	BacklogNumericScore = 100

	// RadioMinScore is the minimum option score before a radio candidate is
	// emitted.
	RadioMinScore = 80

	// RadioYesNoMinScore replaces RadioMinScore for plain two-option
	// Yes/No groups, where token overlap alone is treated as noise.
	RadioYesNoMinScore = 150

	// CheckboxScore is the confidence recorded for checkbox candidates.
	CheckboxScore = 50

	// RelaxedScore is the flat confidence of the relaxed fallback pass. It
	// sits below the display threshold on purpose: relaxed candidates always
	// render as low-confidence for review.
	RelaxedScore = 30

	// OtherOptionPenalty is subtracted from catch-all "Other" options so
	// they never win by accident.
	OtherOptionPenalty = 80
)

// ScoreMatch coefficients (question label vs alias phrase).
const (
	aliasTokenWeight  = 16
	aliasPrefixWeight = 6
)

// MatchScore coefficients (profile value vs option label).
const (
	overlapWeight        = 100
	optionProportionBias = 500
	verbosityPenalty     = 40
	queryProportionBias  = 50
)

// Pattern corroboration bonuses added in MatchLabelToField.
const (
	emailPatternBonus    = 40
	phonePatternBonus    = 30
	gpaPatternBonus      = 25
	resumePatternBonus   = 35
	relocatePatternBonus = 30
)
