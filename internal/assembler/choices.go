package assembler

import (
	"regexp"
	"strings"

	"github.com/rishi/placement-autofill/internal/matching"
	"github.com/rishi/placement-autofill/internal/textnorm"
	"github.com/rishi/placement-autofill/internal/types"
)

var (
	otherOptionRe     = regexp.MustCompile(`(^|\s)other(\s|$)|other response|other:`)
	genderTokenRe     = regexp.MustCompile(`\b(male|female|man|woman|m|f)\b`)
	genderLabelRe     = regexp.MustCompile(`\b(gender|sex)\b`)
	relocationHintRe  = regexp.MustCompile(`relocat|work from office|work from home|on-?site|wfh|wfo|hybrid`)
	graduationLabelRe = regexp.MustCompile(`graduat|pass|yop|year|batch`)
	digitsRe          = regexp.MustCompile(`\d+`)
)

// matchSelectControl applies the select policy: backlog-count questions get
// a numeric short-circuit, otherwise options are scored against the
// alias-matched field and, failing that, the prioritized profile fields.
func matchSelectControl(ctl *types.Control, profile types.Profile) (types.Candidate, bool) {
	if len(ctl.Options) == 0 {
		return types.Candidate{}, false
	}
	label := ctl.CombinedLabel()

	matchedKey := ""
	if m := matching.MatchLabelToField(label, profile); m.Key != "" {
		matchedKey = m.Key
	} else if k, _ := matching.SimpleMatch(label, profile); k != "" {
		matchedKey = types.FieldFallback
	}

	// backlog counts compare numerically, not by token overlap
	if backlogQuestion(label, matchedKey) && profile.Has(types.FieldBacklogCount) {
		if n := digitsRe.FindString(profile.Get(types.FieldBacklogCount)); n != "" {
			for i := range ctl.Options {
				opt := &ctl.Options[i]
				if strings.Contains(opt.Label, n) || strings.Contains(opt.Value, n) {
					return choiceCandidate(ctl, label, types.FieldBacklogCount, opt, matching.BacklogNumericScore), true
				}
			}
		}
	}

	var chosen *types.Option
	chosenKey := matchedKey

	if matchedKey != "" && profile.Has(matchedKey) {
		chosen = bestOptionFor(ctl.Options, profile.Get(matchedKey))
	}

	if chosen == nil {
		best := 0
		for _, fv := range profileMatchCandidates(profile) {
			for i := range ctl.Options {
				opt := &ctl.Options[i]
				s := scoreOption(fv.Value, opt)
				if s > best {
					best, chosen, chosenKey = s, opt, fv.Key
				}
			}
		}
	}

	if chosen == nil {
		return types.Candidate{}, false
	}

	// a literal graduation-year substring in any option overrides scoring
	if graduationLabelRe.MatchString(strings.ToLower(ctl.RootLabel)) && profile.Has(types.FieldGraduationYear) {
		year := profile.Get(types.FieldGraduationYear)
		for i := range ctl.Options {
			opt := &ctl.Options[i]
			if strings.Contains(opt.Label, year) || strings.Contains(opt.Value, year) {
				chosen = opt
				chosenKey = types.FieldGraduationYear
				break
			}
		}
	}

	if chosenKey == "" {
		chosenKey = types.FieldFallback
	}
	return choiceCandidate(ctl, label, chosenKey, chosen, matching.SelectChosenScore), true
}

// matchRadioControl applies the radio policy: conditional questions and
// unguarded generic yes/no groups are skipped outright, then every option is
// scored against every queued profile value with the catch-all "Other"
// option penalized.
func matchRadioControl(ctl *types.Control, profile types.Profile) (types.Candidate, bool) {
	if len(ctl.Options) == 0 {
		return types.Candidate{}, false
	}
	label := ctl.CombinedLabel()

	if matching.IsConditionalJobQuestion(label) {
		return types.Candidate{}, false
	}

	matchedKey := ""
	if m := matching.MatchLabelToField(label, profile); m.Key != "" {
		matchedKey = m.Key
	}

	optionLabels := make([]string, len(ctl.Options))
	for i, o := range ctl.Options {
		optionLabels[i] = o.Label
	}
	if matching.SkipGenericYesNo(label, optionLabels, matchedKey) {
		return types.Candidate{}, false
	}

	values := radioCandidateValues(ctl, profile, label, matchedKey)
	if len(values) == 0 {
		return types.Candidate{}, false
	}

	bestScore := 0
	bestKey := ""
	var bestOpt *types.Option
	for i := range ctl.Options {
		opt := &ctl.Options[i]
		localBest, localKey := 0, ""
		for _, fv := range values {
			if s := scoreOption(fv.Value, opt); s > localBest {
				localBest, localKey = s, fv.Key
			}
		}
		if otherOptionRe.MatchString(textnorm.Normalize(opt.Label)) {
			localBest -= matching.OtherOptionPenalty
			if localBest < 0 {
				localBest = 0
			}
		}
		if localBest > bestScore {
			bestScore, bestKey, bestOpt = localBest, localKey, opt
		}
	}

	minScore := matching.RadioMinScore
	if len(ctl.Options) == 2 && matching.IsGenericYesNoOptions(optionLabels) {
		minScore = matching.RadioYesNoMinScore
	}
	if bestOpt == nil || bestScore < minScore {
		return types.Candidate{}, false
	}

	key := matchedKey
	if key == "" {
		key = inferRadioKey(bestOpt.Label, label, bestKey)
	}

	c := choiceCandidate(ctl, label, key, nil, bestScore)
	c.ChosenLabel = bestOpt.Label
	return c, true
}

// radioCandidateValues queues the profile values a radio group may answer
// with. Gender and relocation are included only when the question or its
// options corroborate them, so "Male" can never be guessed onto an unrelated
// two-option question.
func radioCandidateValues(ctl *types.Control, profile types.Profile, label, matchedKey string) []fieldValue {
	var values []fieldValue
	if matchedKey != "" && profile.Has(matchedKey) {
		values = append(values, fieldValue{Key: matchedKey, Value: strings.ToLower(profile.Get(matchedKey))})
	}

	lower := strings.ToLower(label)
	genderRelevant := matchedKey == types.FieldGender || genderLabelRe.MatchString(lower)
	if !genderRelevant {
		for _, o := range ctl.Options {
			if genderTokenRe.MatchString(strings.ToLower(o.Label)) {
				genderRelevant = true
				break
			}
		}
	}
	relocateRelevant := matchedKey == types.FieldRelocate || relocationHintRe.MatchString(lower)

	for _, fv := range profileMatchCandidates(profile) {
		if fv.Key == types.FieldGender && !genderRelevant {
			continue
		}
		if fv.Key == types.FieldRelocate && !relocateRelevant {
			continue
		}
		values = appendUniqueField(values, fv)
	}
	return values
}

// inferRadioKey guesses the field behind an anonymous radio match from the
// winning option's shape.
func inferRadioKey(chosenLabel, questionLabel, scoredKey string) string {
	cl := strings.ToLower(chosenLabel)
	switch {
	case genderTokenRe.MatchString(cl):
		return types.FieldGender
	case yearRe.MatchString(cl) || graduationLabelRe.MatchString(strings.ToLower(questionLabel)):
		return types.FieldGraduationYear
	case scoredKey != "":
		return scoredKey
	default:
		return types.FieldFallback
	}
}

var yearRe = regexp.MustCompile(`\b20\d{2}\b`)

// matchCheckboxControl applies the checkbox policy: same guards as radio,
// but every option whose label token-overlaps the profile value is selected,
// since checkbox groups accept multiple answers.
func matchCheckboxControl(ctl *types.Control, profile types.Profile) (types.Candidate, bool) {
	if len(ctl.Options) == 0 {
		return types.Candidate{}, false
	}
	label := ctl.CombinedLabel()

	if matching.IsConditionalJobQuestion(label) {
		return types.Candidate{}, false
	}

	matchedKey := ""
	if m := matching.MatchLabelToField(label, profile); m.Key != "" {
		matchedKey = m.Key
	}

	optionLabels := make([]string, len(ctl.Options))
	for i, o := range ctl.Options {
		optionLabels[i] = o.Label
	}
	if matching.SkipGenericYesNo(label, optionLabels, matchedKey) {
		return types.Candidate{}, false
	}

	var chosen []string
	key := matchedKey
	if matchedKey != "" && profile.Has(matchedKey) {
		pv := strings.ToLower(profile.Get(matchedKey))
		for _, o := range ctl.Options {
			if textnorm.TokenOverlap(pv, strings.ToLower(o.Label)) > 0 {
				chosen = append(chosen, o.Label)
			}
		}
	}

	if len(chosen) == 0 {
		for _, fv := range profileMatchCandidates(profile) {
			for _, o := range ctl.Options {
				if textnorm.TokenOverlap(fv.Value, strings.ToLower(o.Label)) > 0 && !containsString(chosen, o.Label) {
					chosen = append(chosen, o.Label)
					if key == "" {
						key = fv.Key
					}
				}
			}
		}
	}

	if len(chosen) == 0 {
		return types.Candidate{}, false
	}
	if key == "" {
		key = types.FieldFallback
	}

	c := choiceCandidate(ctl, label, key, nil, matching.CheckboxScore)
	c.ChosenLabels = chosen
	return c, true
}

// bestOptionFor scores every option against one profile value and returns
// the best positive hit, or nil.
func bestOptionFor(options []types.Option, profileValue string) *types.Option {
	best := 0
	var chosen *types.Option
	for i := range options {
		opt := &options[i]
		if s := scoreOption(profileValue, opt); s > best {
			best, chosen = s, opt
		}
	}
	return chosen
}

// scoreOption runs MatchScore against both the option's label and its
// underlying value, taking the better of the two.
func scoreOption(profileValue string, opt *types.Option) int {
	s := matching.MatchScore(profileValue, textnorm.Canonicalize(opt.Label), opt.Label)
	if opt.Value != "" && opt.Value != opt.Label {
		if sv := matching.MatchScore(profileValue, textnorm.Canonicalize(opt.Value), opt.Value); sv > s {
			s = sv
		}
	}
	return s
}

func backlogQuestion(label, matchedKey string) bool {
	return matchedKey == types.FieldBacklogCount || strings.Contains(strings.ToLower(label), "backlog")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// choiceCandidate fills the shared candidate fields for choice controls.
func choiceCandidate(ctl *types.Control, label, key string, chosen *types.Option, score int) types.Candidate {
	c := types.Candidate{
		Type:         ctl.Type,
		Label:        label,
		Key:          key,
		Score:        score,
		Options:      ctl.Options,
		Selectors:    selectorList(ctl),
		RootSelector: ctl.RootSelector,
		RootID:       ctl.RootID,
	}
	if chosen != nil {
		chosenCopy := *chosen
		c.Chosen = &chosenCopy
	}
	return c
}
