package formdom

import "github.com/rishi/placement-autofill/internal/types"

// Action names the DOM write a host must perform for one instruction.
type Action string

// Apply actions. The writer that executes them (browser extension, chromedp
// script, ...) owns event dispatch and framework quirks; the plan only says
// what to set where.
const (
	ActionSetText     Action = "set_text"
	ActionSelect      Action = "select_option"
	ActionChooseRadio Action = "choose_radio"
	ActionCheckBoxes  Action = "check_boxes"
)

// Instruction is one serializable DOM write derived from an approved
// candidate.
type Instruction struct {
	Action       Action   `json:"action"`
	Selector     string   `json:"selector,omitempty"`
	RootSelector string   `json:"root_selector,omitempty"`
	Key          string   `json:"key,omitempty"`
	Value        string   `json:"value,omitempty"`
	OptionValue  string   `json:"option_value,omitempty"`
	OptionLabel  string   `json:"option_label,omitempty"`
	OptionLabels []string `json:"option_labels,omitempty"`
}

// BuildApplyPlan turns approved candidates into fill instructions. Merged
// candidates carry several source selectors; each one gets its own
// instruction so every contributing control is written.
func BuildApplyPlan(candidates []types.Candidate) []Instruction {
	var plan []Instruction
	for i := range candidates {
		c := &candidates[i]
		switch c.Type {
		case types.ControlText:
			for _, sel := range selectorsOrRoot(c) {
				plan = append(plan, Instruction{
					Action:   ActionSetText,
					Selector: sel,
					Key:      c.Key,
					Value:    c.Value,
				})
			}
		case types.ControlSelect:
			if c.Chosen == nil {
				continue
			}
			for _, sel := range selectorsOrRoot(c) {
				plan = append(plan, Instruction{
					Action:      ActionSelect,
					Selector:    sel,
					Key:         c.Key,
					OptionValue: c.Chosen.Value,
					OptionLabel: c.Chosen.Label,
				})
			}
		case types.ControlRadio:
			if c.ChosenLabel == "" {
				continue
			}
			plan = append(plan, Instruction{
				Action:       ActionChooseRadio,
				RootSelector: c.RootSelector,
				Key:          c.Key,
				OptionLabel:  c.ChosenLabel,
			})
		case types.ControlCheckbox:
			if len(c.ChosenLabels) == 0 {
				continue
			}
			plan = append(plan, Instruction{
				Action:       ActionCheckBoxes,
				RootSelector: c.RootSelector,
				Key:          c.Key,
				OptionLabels: c.ChosenLabels,
			})
		}
	}
	return plan
}

func selectorsOrRoot(c *types.Candidate) []string {
	if len(c.Selectors) > 0 {
		return c.Selectors
	}
	if c.RootSelector != "" {
		return []string{c.RootSelector}
	}
	return []string{""}
}
