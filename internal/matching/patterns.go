package matching

import "regexp"

// Patterns are structural signals detected in a question label, independent
// of the alias table. They corroborate alias hits in MatchLabelToField.
type Patterns struct {
	GPA      bool
	Percent  bool
	Phone    bool
	Email    bool
	Resume   bool
	Relocate bool
}

var (
	gpaNumberRe    = regexp.MustCompile(`\b\d{1,2}(\.\d)?\b`)
	gpaKeywordRe   = regexp.MustCompile(`gpa|cgpa|grade|aggregate|cpi`)
	percentRe      = regexp.MustCompile(`\b\d{1,3}%|percentage|%`)
	phoneDigitsRe  = regexp.MustCompile(`\b\d{6,13}\b`)
	phoneKeywordRe = regexp.MustCompile(`phone|mobile|contact|whatsapp`)
	emailShapeRe   = regexp.MustCompile(`\b\S+@\S+\.\S+\b`)
	emailKeywordRe = regexp.MustCompile(`email|e-mail`)
	resumeRe       = regexp.MustCompile(`resume|cv|drive|linkedin|github|portfolio|upload`)
	relocateRe     = regexp.MustCompile(`relocate|relocation|willing to relocate|willing to shift`)
)

// DetectPatterns inspects the (lowercased) question text for structural
// shapes: decimal-near-GPA-keyword, percent signs, long digit runs,
// email-shaped substrings and so on.
func DetectPatterns(question string) Patterns {
	return Patterns{
		GPA:      gpaNumberRe.MatchString(question) && gpaKeywordRe.MatchString(question),
		Percent:  percentRe.MatchString(question),
		Phone:    phoneDigitsRe.MatchString(question) || phoneKeywordRe.MatchString(question),
		Email:    emailShapeRe.MatchString(question) || emailKeywordRe.MatchString(question),
		Resume:   resumeRe.MatchString(question),
		Relocate: relocateRe.MatchString(question),
	}
}
