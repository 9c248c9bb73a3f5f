// Package formdom reads an HTML form snapshot into plain control
// descriptors for the matching engine, and turns approved candidates back
// into serializable fill instructions. The engine itself never sees a DOM
// handle; this package is the only place goquery selections live.
package formdom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cssSelector synthesizes a stable-ish selector for a node: its id when
// present, otherwise a tag.class:nth-of-type path from the body down. The
// result is opaque to the engine; it only has to round-trip through the
// apply layer.
func cssSelector(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	if id, ok := sel.Attr("id"); ok && id != "" {
		return "#" + id
	}

	var parts []string
	node := sel
	for node.Length() > 0 {
		tag := goquery.NodeName(node)
		if tag == "body" || tag == "html" || strings.HasPrefix(tag, "#") {
			break
		}
		part := tag
		if class, ok := node.Attr("class"); ok {
			if first := firstField(class); first != "" {
				part += "." + first
			}
		}
		parent := node.Parent()
		if parent.Length() > 0 {
			siblings := parent.ChildrenFiltered(tag)
			if siblings.Length() > 1 {
				idx := 0
				siblings.EachWithBreak(func(i int, s *goquery.Selection) bool {
					if s.Get(0) == node.Get(0) {
						idx = i
						return false
					}
					return true
				})
				part += fmt.Sprintf(":nth-of-type(%d)", idx+1)
			}
		}
		parts = append([]string{part}, parts...)
		node = parent
	}
	return strings.Join(parts, " > ")
}

func firstField(s string) string {
	for _, f := range strings.Fields(s) {
		return f
	}
	return ""
}
