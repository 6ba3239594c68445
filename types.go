package md2site

import "time"

// Heading is a single record extracted from one Markdown heading line.
type Heading struct {
	Level int    // 1-6, the count of leading # markers
	Title string // trimmed heading text
	Slug  string // anchor identifier derived from Title
}

// Outline is the ordered sequence of headings for one document.
// Insertion order is display order; duplicates are kept as-is.
type Outline []Heading

// NavLink is one entry in the page header navigation.
type NavLink struct {
	Label string
	Href  string
}

// Site holds site-wide settings shared by every generated page.
type Site struct {
	Name       string    // shown in the header and <title> suffix
	RepoURL    string    // drives the repository corner link (empty = hidden)
	Nav        []NavLink // header navigation links
	FooterText string    // free-form footer line (empty = hidden)
}

// Input contains conversion parameters for a single document.
type Input struct {
	Markdown string // raw Markdown content
	Name     string // source filename, used for the title fallback (optional)
}

// Result holds the output of a single document conversion.
type Result struct {
	HTML    string  // complete HTML page
	Title   string  // resolved document title
	Outline Outline // extracted outline in document order
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	site      Site
	now       func() time.Time
	date      string // pre-resolved display date; empty = derive from now
	template  string // page template content; empty = embedded default
	styles    string // CSS injected into the page; empty = embedded default
	stylesSet bool   // distinguishes WithStyles("") from no option
}

// WithSite sets the site-wide settings applied to every page.
func WithSite(site Site) Option {
	return func(s *Service) {
		s.cfg.site = site
	}
}

// WithNow sets the clock used to derive the generation date.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("md2site: WithNow clock must not be nil")
	}
	return func(s *Service) {
		s.cfg.now = now
	}
}

// WithDate sets a pre-resolved display date, bypassing the clock.
func WithDate(date string) Option {
	return func(s *Service) {
		s.cfg.date = date
	}
}

// WithTemplate sets the page template content, replacing the embedded default.
func WithTemplate(content string) Option {
	return func(s *Service) {
		s.cfg.template = content
	}
}

// WithStyles sets the CSS injected into each page, replacing the embedded
// default. Pass an empty string to disable styling entirely.
func WithStyles(css string) Option {
	return func(s *Service) {
		s.cfg.styles = css
		s.cfg.stylesSet = true
	}
}
