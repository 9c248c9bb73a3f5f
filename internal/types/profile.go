// Package types provides type definitions for structured data used throughout the placement-autofill system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is a flat mapping from field key to a scalar value (string or
// number-like string). Profiles are named and stored externally; the matching
// engine only ever reads them.
type Profile map[string]string

// Known profile field keys. The vocabulary is open: stores and the matcher
// accept arbitrary keys, these constants just name the ones the alias
// dictionary and assembler know about.
const (
	FieldFullName             = "fullName"
	FieldEmail                = "email"
	FieldPhone                = "phone"
	FieldRollNo               = "rollNo"
	FieldCGPA                 = "cgpa"
	FieldTenthPercent         = "tenthPercent"
	FieldTwelfthPercent       = "twelfthPercent"
	FieldResumeLink           = "resumeLink"
	FieldCollege              = "college"
	FieldBranch               = "branch"
	FieldGender               = "gender"
	FieldRelocate             = "relocate"
	FieldGraduationYear       = "graduationYear"
	FieldBacklogCount         = "backlogCount"
	FieldDOB                  = "dob"
	FieldNationality          = "nationality"
	FieldHighestQualification = "highestQualification"
	FieldQualification        = "qualification"
	FieldCity                 = "city"
)

// FieldFallback marks a candidate that was matched only by generic label
// heuristics rather than the alias dictionary.
const FieldFallback = "fallback"

// Get returns the value for key, or "" when the profile lacks it.
func (p Profile) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Has reports whether the profile carries a non-empty value for key.
func (p Profile) Has(key string) bool {
	return p.Get(key) != ""
}
