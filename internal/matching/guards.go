package matching

import (
	"regexp"
	"strings"

	"github.com/rishi/placement-autofill/internal/textnorm"
	"github.com/rishi/placement-autofill/internal/types"
)

// genericYesNo holds the option spellings that make a choice group a plain
// binary question.
var genericYesNo = map[string]struct{}{
	"yes": {}, "no": {}, "y": {}, "n": {},
	"true": {}, "false": {},
	"agree": {}, "disagree": {},
}

// booleanLabelKeywords signal a commitment/preference question whose answer
// legitimately is yes or no.
var booleanLabelKeywords = []string{
	"relocate", "work from", "attend", "interview", "available", "ready",
	"willing", "able", "onsite", "on site", "remote", "agree", "consent",
	"accept",
}

// booleanSemanticKeys is the allow-list of profile fields whose values are
// boolean answers; only these may drive a generic yes/no group.
var booleanSemanticKeys = map[string]struct{}{
	types.FieldRelocate: {},
	"hasBacklogs":       {},
	"attendInterview":   {},
	"canAttendInterview": {},
	"availability":      {},
	"available":         {},
	"willing":           {},
}

// IsGenericYesNoOptions reports whether every option, stripped of
// punctuation and lowercased, is a generic binary answer.
func IsGenericYesNoOptions(optionLabels []string) bool {
	if len(optionLabels) == 0 {
		return false
	}
	for _, label := range optionLabels {
		n := textnorm.Normalize(label)
		if _, ok := genericYesNo[n]; !ok {
			return false
		}
	}
	return true
}

// LabelLooksBoolean reports whether the label contains a keyword that marks
// a commitment/preference question.
func LabelLooksBoolean(label string) bool {
	l := strings.ToLower(label)
	for _, kw := range booleanLabelKeywords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

// IsBooleanSemanticKey reports whether the profile field's value is itself
// a yes/no answer.
func IsBooleanSemanticKey(key string) bool {
	_, ok := booleanSemanticKeys[key]
	return ok
}

// SkipGenericYesNo decides whether a generic yes/no group must be skipped
// entirely. Guessing a binary answer from token overlap alone produces
// wrong submissions, so unless the label or the matched key says the
// question is genuinely boolean, no candidate may be produced.
func SkipGenericYesNo(label string, optionLabels []string, matchedKey string) bool {
	if !IsGenericYesNoOptions(optionLabels) {
		return false
	}
	if LabelLooksBoolean(label) {
		return false
	}
	if IsBooleanSemanticKey(matchedKey) {
		return false
	}
	return true
}

// conditionalPatterns recognize forward-commitment questions that a static
// profile cannot answer ("will you attend...", "if you are selected...").
var conditionalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`are you (ready|willing|able|prepared)`),
	regexp.MustCompile(`will you be`),
	regexp.MustCompile(`can you (attend|work|join|relocate)`),
	regexp.MustCompile(`if you (clear|get|pass|succeed|are selected)`),
	regexp.MustCompile(`do you agree to`),
	regexp.MustCompile(`(this|the) (job|position|role|company) requires`),
}

// IsConditionalJobQuestion reports whether the label asks about future
// circumstances. Such questions are excluded from both matching passes
// regardless of confidence.
func IsConditionalJobQuestion(label string) bool {
	l := strings.ToLower(label)
	for _, re := range conditionalPatterns {
		if re.MatchString(l) {
			return true
		}
	}
	return false
}
