package md2site

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
)

// dateLayout is the generation date format shown in the page footer.
const dateLayout = "2006-01-02"

// Service orchestrates the Markdown-to-HTML page pipeline.
type Service struct {
	cfg           serviceConfig
	preprocessor  markdownPreprocessor
	htmlConverter htmlConverter
	assembler     pageAssembler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSite, WithTemplate).
// Returns an error if the page template cannot be loaded or parsed.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:           serviceConfig{now: time.Now},
		preprocessor:  &commonMarkPreprocessor{},
		htmlConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Fall back to embedded assets for anything not injected
	loader := assets.NewEmbeddedLoader()
	if s.cfg.template == "" {
		tmplContent, err := loader.LoadTemplate(assets.DefaultTemplate)
		if err != nil {
			return nil, fmt.Errorf("loading default template: %w", err)
		}
		s.cfg.template = tmplContent
	}
	if !s.cfg.stylesSet {
		css, err := loader.LoadStyle(assets.DefaultStyle)
		if err != nil {
			return nil, fmt.Errorf("loading default style: %w", err)
		}
		s.cfg.styles = css
	}

	assembler, err := newTemplateAssembler(s.cfg.template)
	if err != nil {
		return nil, err
	}
	s.assembler = assembler

	return s, nil
}

// Convert runs the full pipeline for one document and returns the page.
// The context is used for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Extract outline and render the sidebar fragment
	outline := ExtractOutline(mdContent)
	sidebar := RenderSidebar(outline)

	// Render the body fragment
	body, err := s.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := ResolveTitle(mdContent, input.Name)

	date := s.cfg.date
	if date == "" {
		date = s.cfg.now().Format(dateLayout)
	}

	// Assemble the page
	page, err := s.assembler.AssemblePage(ctx, &PageData{
		Title:      title,
		SiteName:   s.cfg.site.Name,
		Body:       template.HTML(body),    // #nosec G203 -- goldmark output, raw HTML sanitized
		Sidebar:    template.HTML(sidebar), // #nosec G203 -- generated fragment, titles escaped
		Styles:     template.CSS(s.cfg.styles),
		Date:       date,
		Nav:        s.cfg.site.Nav,
		RepoURL:    s.cfg.site.RepoURL,
		FooterText: s.cfg.site.FooterText,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	return &Result{
		HTML:    page,
		Title:   title,
		Outline: outline,
	}, nil
}
