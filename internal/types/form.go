package types

// ControlType identifies the kind of form control a candidate targets.
type ControlType string

// Control types recognized by the assembler.
const (
	ControlText     ControlType = "text"
	ControlSelect   ControlType = "select"
	ControlRadio    ControlType = "radio"
	ControlCheckbox ControlType = "checkbox"
)

// Option is one choice of a select/radio/checkbox control: a visible label
// and an optional underlying value. Order is preserved for display; matching
// treats options as unordered.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
}

// Control is a plain-data descriptor of one form control, produced by the
// form reader. It carries no live DOM handles; Selector and RootSelector are
// opaque references the apply layer can resolve back to the page.
type Control struct {
	Type ControlType `json:"type"`

	// Label is the control's own derived label (accessible name, resolved
	// aria-labelledby text, placeholder, ...). May be empty.
	Label string `json:"label,omitempty"`

	// RootLabel is the title of the question container the control sits in.
	RootLabel string `json:"root_label,omitempty"`

	// RootID is the grouping identity of the question container. All
	// controls of one logical question share a RootID; it is the dedup key.
	RootID string `json:"root_id,omitempty"`

	// InputType is the raw HTML type attribute for text-like inputs
	// ("text", "email", "tel", "url", ...).
	InputType string `json:"input_type,omitempty"`

	// Options for select/radio/checkbox controls.
	Options []Option `json:"options,omitempty"`

	// HasChoiceSibling is true when the question container also holds a
	// radio/select/checkbox control (the "Other -> text" layout).
	HasChoiceSibling bool `json:"has_choice_sibling,omitempty"`

	Selector     string `json:"selector,omitempty"`
	RootSelector string `json:"root_selector,omitempty"`
}

// FormSnapshot is everything the matching engine sees of a form: an ordered
// list of control descriptors, derived fresh on every pass.
type FormSnapshot struct {
	Title    string    `json:"title,omitempty"`
	URL      string    `json:"url,omitempty"`
	Controls []Control `json:"controls"`
}

// CombinedLabel joins the container title and the control's own label for
// richer context ("Course - Name" vs a bare "Name").
func (c *Control) CombinedLabel() string {
	if c.RootLabel == "" {
		return c.Label
	}
	if c.Label == "" || c.Label == c.RootLabel {
		return c.RootLabel
	}
	return c.RootLabel + " - " + c.Label
}
