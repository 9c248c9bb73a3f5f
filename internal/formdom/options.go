package formdom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rishi/placement-autofill/internal/types"
)

// optionLabel extracts a display label for one radio/checkbox option
// element: data-value (Google Forms role=radio divs), aria-label/title, an
// associated <label>, then nearby sibling/parent text.
func optionLabel(doc *goquery.Document, opt *goquery.Selection) string {
	if v, ok := opt.Attr("data-value"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := opt.Attr("aria-label"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := opt.Attr("title"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if id, ok := opt.Attr("id"); ok && id != "" {
		if lab := doc.Find(`label[for="` + id + `"]`).First(); lab.Length() > 0 {
			if text := firstLine(lab.Text()); text != "" {
				return text
			}
		}
	}
	if sib := opt.Next(); sib.Length() > 0 {
		if text := firstLine(sib.Text()); text != "" {
			return text
		}
	}
	if parent := opt.Parent(); parent.Length() > 0 {
		if text := firstLine(parent.Text()); text != "" {
			return text
		}
	}
	if v, ok := opt.Attr("value"); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// selectOptions reads a <select>'s option list, preserving order.
func selectOptions(sel *goquery.Selection) []types.Option {
	var out []types.Option
	sel.Find("option").Each(func(_ int, o *goquery.Selection) {
		value, _ := o.Attr("value")
		out = append(out, types.Option{
			Label: strings.TrimSpace(o.Text()),
			Value: value,
		})
	})
	return out
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			return line
		}
	}
	return ""
}
