package matching

import (
	"regexp"
	"strings"

	"github.com/rishi/placement-autofill/internal/types"
)

// courseContextRe marks labels that ask for a course/certificate/platform
// name; a person's name must never be filled into those.
var courseContextRe = regexp.MustCompile(`course|certif|certificate|cert|platform|institute|company|organization|organisation|training|program`)

// institutionRe marks labels that genuinely ask for a college/university.
var institutionRe = regexp.MustCompile(`college|institution|university|institute|school|campus`)

// yearRe matches a literal 20xx year in a label.
var yearRe = regexp.MustCompile(`\b20\d{2}\b`)

// CourseContext reports whether the label reads like a course/certification
// question rather than a personal-detail one.
func CourseContext(label string) bool {
	return courseContextRe.MatchString(strings.ToLower(label))
}

// InstitutionContext reports whether the label plainly names an institution.
func InstitutionContext(label string) bool {
	return institutionRe.MatchString(strings.ToLower(label))
}

// SimpleMatch is the ordered substring cascade used when the alias matcher
// finds nothing: direct label keywords map straight to profile keys. It
// returns the matched key and value, or ("", "") when no rule fires or the
// profile lacks the mapped field.
func SimpleMatch(label string, profile types.Profile) (string, string) {
	q := strings.ToLower(label)

	if strings.Contains(q, "name") && !CourseContext(q) {
		if v := profile.Get(types.FieldFullName); v != "" {
			return types.FieldFullName, v
		}
	}
	if strings.Contains(q, "email") {
		return returnIf(profile, types.FieldEmail)
	}
	if strings.Contains(q, "phone") || strings.Contains(q, "mobile") || strings.Contains(q, "contact") {
		return returnIf(profile, types.FieldPhone)
	}
	if strings.Contains(q, "roll") || strings.Contains(q, "enrol") || strings.Contains(q, "registration") {
		return returnIf(profile, types.FieldRollNo)
	}
	if strings.Contains(q, "cgpa") || strings.Contains(q, "gpa") || strings.Contains(q, "grade") {
		return returnIf(profile, types.FieldCGPA)
	}
	if strings.Contains(q, "10th") || strings.Contains(q, "tenth") || strings.Contains(q, "ssc") {
		return returnIf(profile, types.FieldTenthPercent)
	}
	if strings.Contains(q, "12th") || strings.Contains(q, "twelfth") || strings.Contains(q, "hsc") {
		return returnIf(profile, types.FieldTwelfthPercent)
	}
	if strings.Contains(q, "resume") || strings.Contains(q, "cv") {
		return returnIf(profile, types.FieldResumeLink)
	}
	if InstitutionContext(q) && !CourseContext(q) {
		return returnIf(profile, types.FieldCollege)
	}
	if strings.Contains(q, "branch") || strings.Contains(q, "stream") || strings.Contains(q, "department") {
		return returnIf(profile, types.FieldBranch)
	}
	if strings.Contains(q, "backlog") {
		return returnIf(profile, types.FieldBacklogCount)
	}
	if strings.Contains(q, "dob") || strings.Contains(q, "date of birth") {
		return returnIf(profile, types.FieldDOB)
	}
	if strings.Contains(q, "nationality") || strings.Contains(q, "citizenship") {
		return returnIf(profile, types.FieldNationality)
	}
	if strings.Contains(q, "graduat") || strings.Contains(q, "passing") ||
		strings.Contains(q, "pass out") || strings.Contains(q, "yop") ||
		strings.Contains(q, "year of") || yearRe.MatchString(q) {
		return returnIf(profile, types.FieldGraduationYear)
	}
	return "", ""
}

func returnIf(profile types.Profile, key string) (string, string) {
	if v := profile.Get(key); v != "" {
		return key, v
	}
	return "", ""
}
