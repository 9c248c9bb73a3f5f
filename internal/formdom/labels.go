package formdom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// questionRootSelector lists the container classes/roles known to wrap one
// logical question, Google Forms variants first.
const questionRootSelector = ".freebirdFormviewerComponentsQuestionBaseRoot, .freebirdFormviewerViewItemsItemItem, .freebirdFormviewerViewItemsItemItemRoot, .question, div[role=\"listitem\"]"

// titleSelectors are tried in order when extracting a question title from
// its container.
var titleSelectors = []string{
	".freebirdFormviewerComponentsQuestionBaseTitle",
	".freebirdFormviewerComponentsQuestionBaseHeader",
	".q-title",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"[role=\"heading\"]",
}

// questionRoot finds the container that groups el with its question text and
// sibling controls.
func questionRoot(el *goquery.Selection) *goquery.Selection {
	root := el.Closest(questionRootSelector)
	if root.Length() == 0 {
		return nil
	}
	return root.First()
}

// rootTitle extracts a human-readable title from a question container,
// walking the fallback chain: known title nodes, headings, aria-labelledby
// resolution, then the container's first sizable text line.
func rootTitle(doc *goquery.Document, root *goquery.Selection) string {
	if root == nil || root.Length() == 0 {
		return ""
	}
	for _, sel := range titleSelectors {
		if el := root.Find(sel).First(); el.Length() > 0 {
			if text := cleanText(el.Text()); text != "" {
				return text
			}
		}
	}
	// containers often hang the title off aria-labelledby instead
	var resolved string
	root.Find("[aria-labelledby]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if ids, ok := el.Attr("aria-labelledby"); ok {
			if text := resolveLabelIDs(doc, root, ids); text != "" {
				resolved = text
				return false
			}
		}
		return true
	})
	if resolved != "" {
		return resolved
	}
	// first sizable text line
	if text := cleanText(root.Text()); len(text) > 3 {
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				return line
			}
		}
		return text
	}
	return ""
}

// controlLabel derives a label for one control: aria-label, resolved
// aria-labelledby (scoped to the question root first), an associated
// <label for=...>, then placeholder/title attributes.
func controlLabel(doc *goquery.Document, root, el *goquery.Selection) string {
	if v, ok := el.Attr("aria-label"); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	if ids, ok := el.Attr("aria-labelledby"); ok {
		if text := resolveLabelIDs(doc, root, ids); text != "" {
			return text
		}
	}
	if id, ok := el.Attr("id"); ok && id != "" {
		if lab := doc.Find(`label[for="` + id + `"]`).First(); lab.Length() > 0 {
			if text := cleanText(lab.Text()); text != "" {
				return text
			}
		}
	}
	if v, ok := el.Attr("placeholder"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := el.Attr("title"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return ""
}

// resolveLabelIDs resolves a space-separated aria-labelledby id list,
// preferring nodes inside root so labels from other questions cannot bleed
// in, and joins the resolved texts.
func resolveLabelIDs(doc *goquery.Document, root *goquery.Selection, ids string) string {
	var parts []string
	for _, id := range strings.Fields(ids) {
		var el *goquery.Selection
		if root != nil && root.Length() > 0 {
			el = root.Find(`[id="` + id + `"]`).First()
		}
		if el == nil || el.Length() == 0 {
			el = doc.Find(`[id="` + id + `"]`).First()
		}
		if el.Length() == 0 {
			continue
		}
		if text := cleanText(el.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// cleanText trims and collapses intra-line whitespace while keeping line
// breaks, so rootTitle can pick the first line.
func cleanText(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		l = strings.Join(strings.Fields(l), " ")
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
