package md2site

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for outline extraction.
var (
	// ATX heading: one to six markers, at least one whitespace, then text
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)`)

	// Characters outside word chars, whitespace, and hyphens
	slugStripPattern = regexp.MustCompile(`[^\w\s-]`)

	// Whitespace runs collapsed to a single hyphen
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// ExtractOutline scans content line by line and returns the document outline.
// Each line is trimmed before matching, so indented headings are recognized.
// Fenced code blocks are not tracked: a #-prefixed line inside a fence is
// extracted like any other heading.
func ExtractOutline(content string) Outline {
	var outline Outline
	for _, line := range strings.Split(content, "\n") {
		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		outline = append(outline, Heading{
			Level: len(m[1]),
			Title: title,
			Slug:  Slugify(title),
		})
	}
	return outline
}

// Slugify derives a URL-anchor-safe identifier from a heading title:
// lowercase, strip everything outside word chars/whitespace/hyphens, trim,
// and collapse whitespace runs to single hyphens. Identical titles produce
// identical slugs; collisions are kept, not disambiguated.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStripPattern.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespaceRun.ReplaceAllString(s, "-")
}
