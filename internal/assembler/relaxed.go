package assembler

import (
	"strings"

	"github.com/rishi/placement-autofill/internal/matching"
	"github.com/rishi/placement-autofill/internal/types"
)

// relaxedRule maps a label substring straight to a profile field, no scoring.
type relaxedRule struct {
	substrings []string
	key        string
}

// relaxedRules fire in order; the first hit wins.
var relaxedRules = []relaxedRule{
	{[]string{"name"}, types.FieldFullName},
	{[]string{"email"}, types.FieldEmail},
	{[]string{"phone", "mobile"}, types.FieldPhone},
	{[]string{"roll", "enrol"}, types.FieldRollNo},
	{[]string{"cgpa", "gpa"}, types.FieldCGPA},
	{[]string{"10th", "tenth"}, types.FieldTenthPercent},
	{[]string{"12th", "twelfth"}, types.FieldTwelfthPercent},
	{[]string{"resume", "cv"}, types.FieldResumeLink},
	{[]string{"college", "institution"}, types.FieldCollege},
	{[]string{"gender"}, types.FieldGender},
	{[]string{"relocate", "willing to relocate"}, types.FieldRelocate},
	{[]string{"branch", "department"}, types.FieldBranch},
}

// AssembleRelaxed is the last-resort pass used only when Assemble produced
// nothing: question titles are mapped to fields by bare substring and every
// hit gets a flat low score, trading precision for recall. Conditional
// questions stay excluded even here.
func AssembleRelaxed(snapshot *types.FormSnapshot, profile types.Profile) []types.Candidate {
	if snapshot == nil || len(profile) == 0 {
		return nil
	}

	var candidates []types.Candidate

	for _, group := range groupByRoot(snapshot) {
		ctl := pickByTypePriority(group)

		title := ctl.RootLabel
		if title == "" {
			title = ctl.Label
		}
		if matching.IsConditionalJobQuestion(title) {
			continue
		}

		key := relaxedKeyFor(title)
		if key == "" || !profile.Has(key) {
			continue
		}
		pv := profile.Get(key)

		c := types.Candidate{
			Type:         ctl.Type,
			Label:        title,
			Key:          key,
			Score:        matching.RelaxedScore,
			Selectors:    selectorList(ctl),
			RootSelector: ctl.RootSelector,
			RootID:       ctl.RootID,
		}

		switch ctl.Type {
		case types.ControlText:
			c.Value = pv
		case types.ControlSelect:
			if len(ctl.Options) == 0 {
				continue
			}
			c.Options = ctl.Options
			chosen := exactOption(ctl.Options, pv)
			if chosen == nil {
				chosen = &ctl.Options[0]
			}
			chosenCopy := *chosen
			c.Chosen = &chosenCopy
		case types.ControlRadio:
			c.Options = ctl.Options
			match := exactOption(ctl.Options, pv)
			if match == nil {
				continue
			}
			c.ChosenLabel = match.Label
		case types.ControlCheckbox:
			if len(ctl.Options) == 0 {
				continue
			}
			c.Options = ctl.Options
			lowerPV := strings.ToLower(pv)
			for _, o := range ctl.Options {
				if o.Label != "" && strings.Contains(lowerPV, strings.ToLower(o.Label)) {
					c.ChosenLabels = append(c.ChosenLabels, o.Label)
				}
			}
			if len(c.ChosenLabels) == 0 {
				c.ChosenLabels = []string{ctl.Options[0].Label}
			}
		}

		candidates = append(candidates, c)
	}

	return candidates
}

// groupByRoot buckets controls by their question container, preserving
// first-seen order. Rootless controls each form their own group.
func groupByRoot(snapshot *types.FormSnapshot) [][]*types.Control {
	var groups [][]*types.Control
	index := make(map[string]int)
	for i := range snapshot.Controls {
		ctl := &snapshot.Controls[i]
		if ctl.RootID == "" {
			groups = append(groups, []*types.Control{ctl})
			continue
		}
		if at, ok := index[ctl.RootID]; ok {
			groups[at] = append(groups[at], ctl)
			continue
		}
		index[ctl.RootID] = len(groups)
		groups = append(groups, []*types.Control{ctl})
	}
	return groups
}

// pickByTypePriority returns the group's control to fill, text first, then
// select, radio, checkbox.
func pickByTypePriority(group []*types.Control) *types.Control {
	order := []types.ControlType{types.ControlText, types.ControlSelect, types.ControlRadio, types.ControlCheckbox}
	for _, t := range order {
		for _, ctl := range group {
			if ctl.Type == t {
				return ctl
			}
		}
	}
	return group[0]
}

func relaxedKeyFor(title string) string {
	l := strings.ToLower(title)
	for _, rule := range relaxedRules {
		for _, sub := range rule.substrings {
			if strings.Contains(l, sub) {
				return rule.key
			}
		}
	}
	return ""
}

// exactOption finds an option whose label or value equals the profile value
// case-insensitively.
func exactOption(options []types.Option, profileValue string) *types.Option {
	pv := strings.ToLower(strings.TrimSpace(profileValue))
	for i := range options {
		o := &options[i]
		if strings.ToLower(o.Label) == pv || (o.Value != "" && strings.ToLower(o.Value) == pv) {
			return o
		}
	}
	return nil
}
