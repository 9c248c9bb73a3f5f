// Package assembler turns a form snapshot and a profile into a ranked,
// deduplicated candidate list. It is a pure fold over the snapshot's
// controls: no I/O, no shared state, same inputs always yield the same
// candidates.
package assembler

import (
	"strings"

	"github.com/rishi/placement-autofill/internal/types"
)

// fieldValue is one profile field queued for option matching.
type fieldValue struct {
	Key   string
	Value string
}

// profilePriorityKeys is the order in which profile fields are tried against
// option labels when the question label itself did not identify a field.
// Branch and college come first because choice questions overwhelmingly ask
// for them; name/email trail so they cannot shadow better matches.
var profilePriorityKeys = []string{
	types.FieldBranch,
	types.FieldCollege,
	types.FieldHighestQualification,
	types.FieldQualification,
	types.FieldGraduationYear,
	types.FieldGender,
	types.FieldRelocate,
	types.FieldFullName,
	types.FieldEmail,
}

// profileMatchCandidates builds the prioritized (key, value) list of profile
// fields worth testing against option labels, values lowercased and trimmed,
// empties dropped.
func profileMatchCandidates(profile types.Profile) []fieldValue {
	out := make([]fieldValue, 0, len(profilePriorityKeys))
	for _, key := range profilePriorityKeys {
		v := strings.TrimSpace(strings.ToLower(profile.Get(key)))
		if v == "" {
			continue
		}
		out = append(out, fieldValue{Key: key, Value: v})
	}
	return out
}

// appendUniquefield appends fv unless a value for the same key is already
// queued.
func appendUniqueField(list []fieldValue, fv fieldValue) []fieldValue {
	for _, existing := range list {
		if existing.Key == fv.Key {
			return list
		}
	}
	return append(list, fv)
}
