// Package md2site converts Markdown documents to static HTML pages with a
// shared responsive template and a table-of-contents sidebar.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc, err := md2site.New(
//	    md2site.WithSite(md2site.Site{Name: "My Docs"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Name:     "hello.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0644)
//
// The result contains the complete page (result.HTML), the resolved title,
// and the extracted outline for callers that want to inspect it.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line limits)
//  2. Outline extraction (heading lines to (level, title, slug) records)
//  3. Sidebar rendering (outline to a nested list fragment)
//  4. Markdown to HTML body rendering via Goldmark (GFM, syntax highlighting)
//  5. Page assembly (body + sidebar + title + date into the page template)
//
// Body rendering is fully delegated to Goldmark; the outline extractor runs
// its own line scan so the sidebar does not depend on the rendered HTML.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc, err := md2site.New(
//	    md2site.WithSite(md2site.Site{Name: "My Docs", RepoURL: "https://github.com/me/docs"}),
//	    md2site.WithDate("2025-01-02"),
//	    md2site.WithTemplate(customTemplate),
//	    md2site.WithStyles(customCSS),
//	)
//
// Without options the embedded "docs" template and stylesheet are used and
// the page date comes from the wall clock. WithNow injects a fixed clock for
// tests.
package md2site
