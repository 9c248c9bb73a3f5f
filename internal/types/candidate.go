package types

// DisplayThreshold is the score below which an emitted candidate is flagged
// for mandatory user review. Low-confidence candidates are a first-class
// state, not an error.
const DisplayThreshold = 50

// Candidate is the result of matching one question against one profile.
// Exactly one of Value / Chosen / ChosenLabel / ChosenLabels is meaningful
// depending on Type.
type Candidate struct {
	Type  ControlType `json:"type"`
	Label string      `json:"label"`

	// Key is the matched profile field, FieldFallback when matched only by
	// generic heuristics, or "" when unmatched.
	Key string `json:"key,omitempty"`

	// Value is the proposed text for text controls.
	Value string `json:"value,omitempty"`

	// Chosen is the selected option for select controls.
	Chosen *Option `json:"chosen,omitempty"`

	// ChosenLabel is the selected option label for radio groups.
	ChosenLabel string `json:"chosen_label,omitempty"`

	// ChosenLabels are the selected option labels for checkbox groups.
	ChosenLabels []string `json:"chosen_labels,omitempty"`

	// Options is the full option list, preserved for user review.
	Options []Option `json:"options,omitempty"`

	Score int `json:"score"`

	// Selectors are opaque references back to every contributing control,
	// preserved through merging so the apply layer can resolve them all.
	Selectors []string `json:"selectors,omitempty"`

	// RootSelector references the question container.
	RootSelector string `json:"root_selector,omitempty"`

	// RootID is the grouping identity used for dedup; not serialized for
	// the apply layer.
	RootID string `json:"-"`
}

// LowConfidence reports whether the candidate scored below the display
// threshold and should be visually flagged for review.
func (c *Candidate) LowConfidence() bool {
	return c.Score < DisplayThreshold
}
