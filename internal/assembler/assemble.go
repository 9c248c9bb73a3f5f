package assembler

import (
	"strings"

	"github.com/rishi/placement-autofill/internal/matching"
	"github.com/rishi/placement-autofill/internal/types"
)

// Assemble runs the primary matching pass over a form snapshot: every
// control is matched against the profile under its type-specific policy,
// guard policies suppress unanswerable questions, the college rescue pass
// sweeps leftovers, and candidates for the same logical question are merged.
// The worst outcome is an empty list; Assemble never fails.
func Assemble(snapshot *types.FormSnapshot, profile types.Profile) []types.Candidate {
	if snapshot == nil || len(snapshot.Controls) == 0 || len(profile) == 0 {
		return nil
	}

	var candidates []types.Candidate
	matchedRoots := make(map[string]struct{})

	emit := func(c types.Candidate) {
		if c.RootID != "" {
			matchedRoots[c.RootID] = struct{}{}
		}
		candidates = append(candidates, c)
	}

	for i := range snapshot.Controls {
		ctl := &snapshot.Controls[i]
		switch ctl.Type {
		case types.ControlText:
			if c, ok := matchTextControl(ctl, profile); ok {
				emit(c)
			}
		case types.ControlSelect:
			if c, ok := matchSelectControl(ctl, profile); ok {
				emit(c)
			}
		case types.ControlRadio:
			if c, ok := matchRadioControl(ctl, profile); ok {
				emit(c)
			}
		case types.ControlCheckbox:
			if c, ok := matchCheckboxControl(ctl, profile); ok {
				emit(c)
			}
		}
	}

	candidates = append(candidates, collegeRescuePass(snapshot, profile, matchedRoots)...)

	return mergeCandidates(candidates)
}

// matchTextControl applies the text policy: alias dictionary first, then the
// SimpleMatch cascade, then the college-direct check, then input-type hints,
// with the false-positive exclusions applied to whatever matched.
func matchTextControl(ctl *types.Control, profile types.Profile) (types.Candidate, bool) {
	label := ctl.CombinedLabel()
	contextHasCourse := matching.CourseContext(ctl.RootLabel)

	key := ""
	value := ""
	score := 0

	if m := matching.MatchLabelToField(label, profile); m.Key != "" && m.Value != "" {
		key, value, score = m.Key, m.Value, m.Score
	}

	if key == "" {
		if _, v := matching.SimpleMatch(label, profile); v != "" {
			key, value, score = types.FieldFallback, v, matching.TextFallbackScore
		}
	}

	if key == "" {
		// some forms mark institution labels in ways the alias matcher
		// misses; check the combined label directly
		clean := cleanRequiredMarkers(label)
		if matching.InstitutionContext(clean) && profile.Has(types.FieldCollege) {
			key, value, score = types.FieldCollege, profile.Get(types.FieldCollege), matching.CollegeDirectScore
		}
	}

	if key == "" {
		switch strings.ToLower(ctl.InputType) {
		case "email":
			if profile.Has(types.FieldEmail) {
				key, value, score = types.FieldEmail, profile.Get(types.FieldEmail), matching.InputTypeHintScore
			}
		case "tel":
			if profile.Has(types.FieldPhone) {
				key, value, score = types.FieldPhone, profile.Get(types.FieldPhone), matching.InputTypeHintScore
			}
		}
	}

	if key == "" || value == "" {
		return types.Candidate{}, false
	}

	// exclusion rules
	switch {
	case key == types.FieldFullName && contextHasCourse:
		// never a person's name inside a course/certificate question
		return types.Candidate{}, false
	case key == types.FieldFullName && matching.InstitutionContext(label):
		// "Name of College" asks for the institution, not the student
		if !profile.Has(types.FieldCollege) {
			return types.Candidate{}, false
		}
		key, value, score = types.FieldCollege, profile.Get(types.FieldCollege), score+5
	case key == types.FieldGender:
		// gender belongs to radio/select controls, never a free-text box
		return types.Candidate{}, false
	case ctl.HasChoiceSibling && key != types.FieldCollege:
		// the "Other -> text" layout: prefer the choice controls, except
		// college questions which legitimately pair text with a follow-up
		return types.Candidate{}, false
	}

	return types.Candidate{
		Type:         types.ControlText,
		Label:        label,
		Key:          key,
		Value:        value,
		Score:        score,
		Selectors:    selectorList(ctl),
		RootSelector: ctl.RootSelector,
		RootID:       ctl.RootID,
	}, true
}

// collegeRescuePass re-scans question containers that produced no candidate.
// A title with genuine institution keywords (and no course phrasing) gets a
// forced text candidate when the profile knows the college.
func collegeRescuePass(snapshot *types.FormSnapshot, profile types.Profile, matchedRoots map[string]struct{}) []types.Candidate {
	if !profile.Has(types.FieldCollege) {
		return nil
	}

	var out []types.Candidate
	seen := make(map[string]struct{})
	for i := range snapshot.Controls {
		ctl := &snapshot.Controls[i]
		if ctl.Type != types.ControlText || ctl.RootID == "" {
			continue
		}
		if _, done := matchedRoots[ctl.RootID]; done {
			continue
		}
		if _, dup := seen[ctl.RootID]; dup {
			continue
		}
		title := ctl.RootLabel
		if title == "" {
			title = ctl.Label
		}
		if !matching.InstitutionContext(title) || matching.CourseContext(title) {
			continue
		}
		seen[ctl.RootID] = struct{}{}
		out = append(out, types.Candidate{
			Type:         types.ControlText,
			Label:        title,
			Key:          types.FieldCollege,
			Value:        profile.Get(types.FieldCollege),
			Score:        matching.CollegeRescueScore,
			Selectors:    selectorList(ctl),
			RootSelector: ctl.RootSelector,
			RootID:       ctl.RootID,
		})
	}
	return out
}

// cleanRequiredMarkers strips the asterisks and "required question" noise
// form renderers append to titles.
func cleanRequiredMarkers(label string) string {
	label = strings.ReplaceAll(label, "*", "")
	label = strings.ReplaceAll(strings.ToLower(label), "required question", "")
	return strings.TrimSpace(label)
}

func selectorList(ctl *types.Control) []string {
	if ctl.Selector == "" {
		return nil
	}
	return []string{ctl.Selector}
}
