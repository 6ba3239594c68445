package md2site_test

import (
	"context"
	"fmt"
	"strings"

	md2site "github.com/alnah/go-md2site"
)

// Example demonstrates basic markdown to HTML page conversion.
func Example() {
	svc, err := md2site.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := svc.Convert(context.Background(), md2site.Input{
		Markdown: "# Hello World\n\nThis is a test.",
		Name:     "hello.md",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(result.HTML, "<h1") {
		fmt.Println("Page generated successfully")
	}
	// Output: Page generated successfully
}

// Example_withSite demonstrates configuring site-wide page chrome.
func Example_withSite() {
	svc, err := md2site.New(
		md2site.WithSite(md2site.Site{
			Name:    "Acme Docs",
			RepoURL: "https://github.com/acme/docs",
			Nav: []md2site.NavLink{
				{Label: "Home", Href: "index.html"},
				{Label: "Guide", Href: "guide.html"},
			},
			FooterText: "Acme Corp",
		}),
		md2site.WithDate("2026-08-30"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := svc.Convert(context.Background(), md2site.Input{
		Markdown: "# Welcome\n\nProject documentation.",
		Name:     "README.md",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(result.HTML, "Acme Docs") {
		fmt.Println("Site chrome applied")
	}
	// Output: Site chrome applied
}

// Example_sidebar demonstrates the generated table of contents.
func Example_sidebar() {
	svc, err := md2site.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	markdown := `# Document Title

## Chapter 1

Content for chapter 1.

## Chapter 2

### Section 2.1

Subsection content.
`

	result, err := svc.Convert(context.Background(), md2site.Input{
		Markdown: markdown,
		Name:     "doc.md",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Outline has %d headings\n", len(result.Outline))
	if strings.Contains(result.HTML, `href="#chapter-1"`) {
		fmt.Println("Sidebar links to chapters")
	}
	// Output:
	// Outline has 4 headings
	// Sidebar links to chapters
}

// ExampleExtractOutline demonstrates standalone outline extraction.
func ExampleExtractOutline() {
	outline := md2site.ExtractOutline("# Title\n## Setup\n## Usage")
	for _, h := range outline {
		fmt.Printf("%d %s -> #%s\n", h.Level, h.Title, h.Slug)
	}
	// Output:
	// 1 Title -> #title
	// 2 Setup -> #setup
	// 2 Usage -> #usage
}
