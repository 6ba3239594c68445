package md2site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PageData carries everything the page template needs for one document.
// Body and Sidebar are pre-rendered fragments; the template trusts them.
type PageData struct {
	Title      string
	SiteName   string
	Body       template.HTML
	Sidebar    template.HTML
	Styles     template.CSS
	Date       string // generation date, YYYY-MM-DD
	Nav        []NavLink
	RepoURL    string
	FooterText string
}

// pageAssembler combines rendered fragments into a complete HTML page.
type pageAssembler interface {
	AssemblePage(ctx context.Context, data *PageData) (string, error)
}

// templateAssembler renders pages through an html/template page shell.
type templateAssembler struct {
	tmpl *template.Template
}

// newTemplateAssembler parses the page template content.
// Returns ErrTemplateParse if the template cannot be parsed.
func newTemplateAssembler(tmplContent string) (*templateAssembler, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &templateAssembler{tmpl: tmpl}, nil
}

// AssemblePage renders the page template with the given data.
func (a *templateAssembler) AssemblePage(ctx context.Context, data *PageData) (string, error) {
	// Check for cancellation
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// firstHeadingPattern matches the first level-1 heading in Markdown content.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// titleCaser title-cases filename-derived fallback titles.
var titleCaser = cases.Title(language.English)

// ResolveTitle returns the document title: the first level-1 heading, or the
// filename stem with underscores as spaces, title-cased, when absent.
func ResolveTitle(markdown, name string) string {
	if m := firstHeadingPattern.FindStringSubmatch(markdown); len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return titleCaser.String(strings.ReplaceAll(stem, "_", " "))
}

// OutputStem maps a source filename to its output filename stem.
// Recognized names map to site entry points (case-insensitive); anything
// else keeps its stem unchanged.
func OutputStem(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	switch strings.ToLower(stem) {
	case "readme":
		return "index"
	case "readme_en":
		return "index_en"
	case "contributing":
		return "contributing"
	}
	return stem
}
