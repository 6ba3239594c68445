// Package config loads and validates site generation configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxSiteNameLength = 100  // Site name shown in the header
	MaxURLLength      = 2048 // Browser limit
	MaxLabelLength    = 100  // Nav link label
	MaxTextLength     = 500  // Footer free-form text
	MaxDateLength     = 50   // "auto:MMMM D, YYYY" or a literal date
	MaxNavLinks       = 20   // Header navigation entries
)

// Config holds all configuration for site generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Site     SiteConfig     `yaml:"site"`
	Logo     LogoConfig     `yaml:"logo"`
	Style    StyleConfig    `yaml:"style"`
	Template TemplateConfig `yaml:"template"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	Dir string `yaml:"dir"` // Directory scanned for *.md files (default ".")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Directory for generated HTML (default "docs")
}

// SiteConfig defines site-wide page chrome.
type SiteConfig struct {
	Name       string    `yaml:"name"`       // Header title and <title> suffix
	RepoURL    string    `yaml:"repoURL"`    // Repository corner link (empty = hidden)
	Nav        []NavLink `yaml:"nav"`        // Header navigation links
	FooterText string    `yaml:"footerText"` // Free-form footer line
	Date       string    `yaml:"date"`       // "auto", "auto:FORMAT", or literal
}

// NavLink is one header navigation entry.
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// LogoConfig defines the optional logo asset copied into the output tree.
type LogoConfig struct {
	Source string `yaml:"source"` // Path to the logo file (empty = skip)
}

// StyleConfig defines CSS styling options.
type StyleConfig struct {
	Name string `yaml:"name"` // Style name or file path (default "docs")
}

// TemplateConfig defines page template options.
type TemplateConfig struct {
	Name string `yaml:"name"` // Template name or file path (default "docs")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths and nav link counts.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("site.name", c.Site.Name, MaxSiteNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.repoURL", c.Site.RepoURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.footerText", c.Site.FooterText, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.date", c.Site.Date, MaxDateLength); err != nil {
		return err
	}

	if len(c.Site.Nav) > MaxNavLinks {
		return fmt.Errorf("site.nav: too many entries (%d, max %d)", len(c.Site.Nav), MaxNavLinks)
	}
	for i, link := range c.Site.Nav {
		if err := validateFieldLength(fmt.Sprintf("site.nav[%d].label", i), link.Label, MaxLabelLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("site.nav[%d].href", i), link.Href, MaxURLLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("logo.source", c.Logo.Source, MaxURLLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no config file is given.
// Defaults mirror the conventional layout: markdown in the working
// directory, HTML under docs/, logo at logo/logo.png.
func DefaultConfig() *Config {
	return &Config{
		Input:    InputConfig{Dir: "."},
		Output:   OutputConfig{Dir: "docs"},
		Site:     SiteConfig{Date: "auto"},
		Logo:     LogoConfig{Source: filepath.Join("logo", "logo.png")},
		Style:    StyleConfig{Name: "docs"},
		Template: TemplateConfig{Name: "docs"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2site/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2site", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
