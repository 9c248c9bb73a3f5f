package formdom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/rishi/placement-autofill/internal/types"
)

// textControlSelector matches every text-like control worth scanning,
// including aria-labeled inputs and contenteditable nodes.
const textControlSelector = `input[type="text"], input[type="email"], input[type="tel"], input[type="url"], textarea, input[aria-label], [contenteditable="true"]`

const choiceControlSelector = `input[type="radio"], input[type="checkbox"], select, [role="radio"], [role="checkbox"]`

// Parse reads an HTML document into a FormSnapshot: one Control descriptor
// per text input and select, one per radio/checkbox group. The snapshot is
// plain data; nothing in it references the parsed document.
func Parse(htmlContent string) (*types.FormSnapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse form HTML: %w", err)
	}

	snap := &types.FormSnapshot{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	seen := make(map[*html.Node]struct{})

	// text-like controls
	doc.Find(textControlSelector).Each(func(_ int, el *goquery.Selection) {
		node := el.Get(0)
		if _, dup := seen[node]; dup {
			return
		}
		seen[node] = struct{}{}

		root := questionRoot(el)
		inputType, _ := el.Attr("type")
		ctl := types.Control{
			Type:      types.ControlText,
			Label:     controlLabel(doc, root, el),
			InputType: strings.ToLower(inputType),
			Selector:  cssSelector(el),
		}
		if root != nil {
			ctl.RootLabel = rootTitle(doc, root)
			ctl.RootSelector = cssSelector(root)
			ctl.RootID = ctl.RootSelector
			ctl.HasChoiceSibling = root.Find(choiceControlSelector).Length() > 0
		}
		snap.Controls = append(snap.Controls, ctl)
	})

	// selects
	doc.Find("select").Each(func(_ int, el *goquery.Selection) {
		root := questionRoot(el)
		ctl := types.Control{
			Type:     types.ControlSelect,
			Label:    controlLabel(doc, root, el),
			Options:  selectOptions(el),
			Selector: cssSelector(el),
		}
		if root != nil {
			ctl.RootLabel = rootTitle(doc, root)
			ctl.RootSelector = cssSelector(root)
			ctl.RootID = ctl.RootSelector
		}
		snap.Controls = append(snap.Controls, ctl)
	})

	snap.Controls = append(snap.Controls, choiceGroups(doc, `input[type="radio"], [role="radio"]`, types.ControlRadio)...)
	snap.Controls = append(snap.Controls, choiceGroups(doc, `input[type="checkbox"], [role="checkbox"]`, types.ControlCheckbox)...)

	return snap, nil
}

// choiceGroups collects radio/checkbox option elements into one Control per
// question container. Options keep document order.
func choiceGroups(doc *goquery.Document, selector string, controlType types.ControlType) []types.Control {
	type group struct {
		root    *goquery.Selection
		options []types.Option
	}

	var order []*html.Node
	groups := make(map[*html.Node]*group)

	doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
		root := questionRoot(el)
		if root == nil {
			root = el.Parent()
			if root.Length() == 0 {
				return
			}
		}
		key := root.Get(0)
		g, ok := groups[key]
		if !ok {
			g = &group{root: root}
			groups[key] = g
			order = append(order, key)
		}
		label := optionLabel(doc, el)
		value, _ := el.Attr("value")
		g.options = append(g.options, types.Option{Label: label, Value: value})
	})

	out := make([]types.Control, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if len(g.options) == 0 {
			continue
		}
		rootSel := cssSelector(g.root)
		out = append(out, types.Control{
			Type:         controlType,
			RootLabel:    rootTitle(doc, g.root),
			RootSelector: rootSel,
			RootID:       rootSel,
			Options:      g.options,
		})
	}
	return out
}
