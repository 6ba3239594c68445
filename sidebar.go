package md2site

import (
	"html"
	"strings"
)

// emptySidebar is emitted when a document has no headings.
const emptySidebar = "<p>No table of contents available</p>"

// Sidebar fragment building blocks.
const (
	sidebarHeader = "<div class=\"toc-title\">Contents</div>\n<ul class=\"toc-list\">\n"
	nestedOpen    = "    <ul class=\"nested-toc\">\n"
	nestedClose   = "    </ul>\n</li>\n"
	sidebarFooter = "</li>\n</ul>\n"
)

// RenderSidebar renders the outline as a nested unordered list whose depth
// tracks heading level transitions. A level jump opens or closes exactly the
// level difference in nested wrappers: the literal delta, never a clamped
// single step. An outline starting above level 1 opens wrappers before the
// first item.
func RenderSidebar(outline Outline) string {
	if len(outline) == 0 {
		return emptySidebar
	}

	var buf strings.Builder
	buf.WriteString(sidebarHeader)

	currentLevel := 1
	for _, h := range outline {
		switch {
		case h.Level > currentLevel:
			for i := 0; i < h.Level-currentLevel; i++ {
				buf.WriteString(nestedOpen)
			}
		case h.Level < currentLevel:
			for i := 0; i < currentLevel-h.Level; i++ {
				buf.WriteString(nestedClose)
			}
		}

		buf.WriteString(`    <li><a href="#`)
		buf.WriteString(h.Slug)
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Title))
		buf.WriteString("</a>")

		currentLevel = h.Level
	}

	for i := 0; i < currentLevel-1; i++ {
		buf.WriteString(nestedClose)
	}
	buf.WriteString(sidebarFooter)

	return buf.String()
}
