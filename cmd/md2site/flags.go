package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds site-wide page chrome flags.
type siteFlags struct {
	name       string
	repoURL    string
	footerText string
	date       string
}

// assetFlags holds asset-related flags (CSS, templates, custom asset path).
type assetFlags struct {
	style     string // Name or path for CSS
	template  string // Name or path for template
	assetPath string // Override asset directory
	noStyle   bool   // Disable CSS styling
}

// logoFlags holds logo copy flags.
type logoFlags struct {
	source   string
	disabled bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	output string
	site   siteFlags
	assets assetFlags
	logo   logoFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds site chrome flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.name, "site-name", "", "site name shown in header and titles")
	fs.StringVar(&f.repoURL, "repo-url", "", "repository URL for the corner link")
	fs.StringVar(&f.footerText, "footer-text", "", "custom footer text")
	fs.StringVar(&f.date, "date", "", "footer date (\"auto\" = today)")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.template, "template", "", "template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// addLogoFlags adds logo flags to a FlagSet.
func addLogoFlags(fs *flag.FlagSet, f *logoFlags) {
	fs.StringVar(&f.source, "logo", "", "logo file copied into the output directory")
	fs.BoolVar(&f.disabled, "no-logo", false, "skip the logo copy")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addAssetFlags(fs, &f.assets)
	addLogoFlags(fs, &f.logo)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
