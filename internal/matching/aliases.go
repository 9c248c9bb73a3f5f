package matching

import "github.com/rishi/placement-autofill/internal/types"

// fieldAlias pairs a profile field key with the phrases forms use for it.
type fieldAlias struct {
	key     string
	phrases []string
}

// fieldAliases is ordered so tie scores resolve the same way on every pass.
// The table is data, not code: extending a field's vocabulary never touches
// the scorer.
var fieldAliases = []fieldAlias{
	{types.FieldFullName, []string{
		"name", "full name", "candidate name", "your name", "applicant name",
		"student name", "student name (as on id)", "student name as on id",
	}},
	{types.FieldEmail, []string{
		"email", "e-mail", "mail id", "email address", "gmail", "email id",
		"preferred email", "your email",
	}},
	{types.FieldPhone, []string{
		"phone", "mobile", "contact", "phone number", "mobile number",
		"whatsapp", "whatsapp number",
	}},
	{types.FieldRollNo, []string{
		"roll", "roll no", "registration", "enrol", "enrollment",
		"student id", "roll number", "admission no", "admission number",
	}},
	{types.FieldCGPA, []string{
		"cgpa", "gpa", "grade", "aggregate", "cpi", "score",
	}},
	{types.FieldTenthPercent, []string{
		"10th", "tenth", "ssc", "class 10", "percentage 10", "10th percentage",
	}},
	{types.FieldTwelfthPercent, []string{
		"12th", "twelfth", "hsc", "class 12", "percentage 12",
		"12th percentage", "diploma percentage",
	}},
	{types.FieldResumeLink, []string{
		"resume", "cv", "curriculum vitae", "resume link", "upload resume",
		"link to resume", "drive link", "linkedin", "github", "portfolio",
	}},
	{types.FieldCollege, []string{
		"college", "institution", "university", "institute", "college name",
	}},
	{types.FieldGender, []string{
		"gender", "sex", "male", "female", "other",
	}},
	{types.FieldRelocate, []string{
		"relocate", "willing to relocate", "willing to shift", "relocation",
		"willing to travel", "willing to relocate?", "are you willing to relocate",
	}},
	{types.FieldBranch, []string{
		"branch", "preferred branch", "department", "stream", "discipline",
	}},
	{types.FieldGraduationYear, []string{
		"graduation year", "year of passing", "passing year", "yop",
		"passing out year", "batch",
	}},
	{types.FieldBacklogCount, []string{
		"backlog", "backlogs", "active backlogs", "number of backlogs",
	}},
	{types.FieldDOB, []string{
		"dob", "date of birth", "birth date",
	}},
	{types.FieldNationality, []string{
		"nationality", "citizenship",
	}},
	{types.FieldCity, []string{
		"city", "current city", "current location", "hometown",
	}},
}
