package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/dateutil"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Builder is the interface for the page generation service.
type Builder interface {
	Convert(ctx context.Context, input md2site.Input) (*md2site.Result, error)
}

// Compile-time interface implementation check.
var _ Builder = (*md2site.Service)(nil)

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runBuild orchestrates the site build.
// Individual page failures are reported but never abort the run: the
// remaining pages are still written and runBuild returns nil.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	// Resolve "auto" date once for the entire batch
	resolvedDate, err := resolveDateWithTime(cfg.Site.Date, env.Now)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}

	// Resolve input and output directories
	inputDir := resolveInputDir(positionalArgs, cfg)
	outputDir := resolveOutputDir(flags.output, cfg)

	// Discover files to build
	files, err := discoverFiles(inputDir, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	// Output directory creation failure is the one filesystem error
	// that aborts the run
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// Logo copy happens before page generation and never aborts the run
	if !flags.logo.disabled {
		copyLogo(cfg.Logo.Source, outputDir, env)
	}

	if len(files) == 0 {
		fmt.Fprintf(env.Stdout, "No markdown files found in %s\n", inputDir)
		return nil
	}
	fmt.Fprintf(env.Stdout, "Found %d markdown files to convert...\n", len(files))

	// Resolve template and style content
	loader, err := resolveAssetLoader(cfg, env)
	if err != nil {
		return err
	}
	templateContent, err := resolveTemplateContent(cfg, loader)
	if err != nil {
		return err
	}
	styleContent, styleSet, err := resolveStyleContent(cfg, flags.assets.noStyle, loader)
	if err != nil {
		return err
	}

	// Build the service
	opts := []md2site.Option{
		md2site.WithSite(md2site.Site{
			Name:       cfg.Site.Name,
			RepoURL:    cfg.Site.RepoURL,
			Nav:        navLinks(cfg),
			FooterText: cfg.Site.FooterText,
		}),
		md2site.WithDate(resolvedDate),
		md2site.WithNow(env.Now),
	}
	if templateContent != "" {
		opts = append(opts, md2site.WithTemplate(templateContent))
	}
	if styleSet {
		opts = append(opts, md2site.WithStyles(styleContent))
	}

	service, err := md2site.New(opts...)
	if err != nil {
		return err
	}

	// Build pages one at a time
	results := buildAll(ctx, service, files)

	// Print results
	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	fmt.Fprintf(env.Stdout, "Conversion complete! HTML files are in the '%s' directory.\n", outputDir)
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.site.name != "" {
		cfg.Site.Name = flags.site.name
	}
	if flags.site.repoURL != "" {
		cfg.Site.RepoURL = flags.site.repoURL
	}
	if flags.site.footerText != "" {
		cfg.Site.FooterText = flags.site.footerText
	}
	if flags.site.date != "" {
		cfg.Site.Date = flags.site.date
	}

	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.template != "" {
		cfg.Template.Name = flags.assets.template
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}

	if flags.logo.source != "" {
		cfg.Logo.Source = flags.logo.source
	}
	if flags.logo.disabled {
		cfg.Logo.Source = ""
	}
}

// resolveDateWithTime resolves "auto" and "auto:FORMAT" to a formatted date.
func resolveDateWithTime(date string, now func() time.Time) (string, error) {
	return dateutil.ResolveDate(date, now())
}

// resolveInputDir determines the input directory from args or config.
func resolveInputDir(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Input.Dir
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.Dir
}

// navLinks converts config nav entries to the library type.
func navLinks(cfg *config.Config) []md2site.NavLink {
	if len(cfg.Site.Nav) == 0 {
		return nil
	}
	links := make([]md2site.NavLink, len(cfg.Site.Nav))
	for i, l := range cfg.Site.Nav {
		links[i] = md2site.NavLink{Label: l.Label, Href: l.Href}
	}
	return links
}

// resolveAssetLoader picks the asset loader: a resolver over a custom
// directory when assets.basePath is set, the environment's loader otherwise.
func resolveAssetLoader(cfg *config.Config, env *Environment) (assets.AssetLoader, error) {
	if cfg.Assets.BasePath == "" {
		return env.AssetLoader, nil
	}
	return assets.NewAssetResolver(cfg.Assets.BasePath)
}

// resolveTemplateContent resolves the page template from a file path or
// a named asset.
func resolveTemplateContent(cfg *config.Config, loader assets.AssetLoader) (string, error) {
	name := cfg.Template.Name
	if name == "" {
		return "", nil
	}
	if fileutil.IsFilePath(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("reading template file: %w", err)
		}
		return string(content), nil
	}
	return loader.LoadTemplate(name)
}

// resolveStyleContent resolves CSS from a file path or a named asset.
// Returns (content, set): set reports whether styling was explicitly
// chosen, so --no-style can force an empty stylesheet.
func resolveStyleContent(cfg *config.Config, noStyle bool, loader assets.AssetLoader) (string, bool, error) {
	if noStyle {
		return "", true, nil
	}

	name := cfg.Style.Name
	if name == "" {
		return "", false, nil
	}
	if fileutil.IsFilePath(name) {
		content, err := os.ReadFile(name) // #nosec G304 -- user-provided path
		if err != nil {
			return "", false, fmt.Errorf("reading style file: %w", err)
		}
		return string(content), true, nil
	}

	content, err := loader.LoadStyle(name)
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

// buildAll processes files one at a time, in discovery order.
func buildAll(ctx context.Context, service Builder, files []FileToBuild) []BuildResult {
	results := make([]BuildResult, len(files))
	for i, f := range files {
		if ctx.Err() != nil {
			results[i] = BuildResult{InputPath: f.InputPath, Err: ctx.Err()}
			continue
		}
		results[i] = buildFile(ctx, service, f)
	}
	return results
}

// buildFile processes a single file and returns the result.
func buildFile(ctx context.Context, service Builder, f FileToBuild) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := service.Convert(ctx, md2site.Input{
		Markdown: string(content),
		Name:     filepath.Base(f.InputPath),
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- HTML pages are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(res.HTML), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// printResultsWithWriter outputs build results using the provided writers.
// Per-page lines go to stdout so the build log reads as one stream.
func printResultsWithWriter(results []BuildResult, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stdout, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Converted %s to %s\n", r.InputPath, r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
