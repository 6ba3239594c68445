// Package assets provides the page templates and CSS styles for site
// generation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in "docs" template and stylesheet
// embedded at compile time. FilesystemLoader allows users to provide custom
// assets from a directory, with path traversal protection. AssetResolver
// tries the custom loader first, falling back to embedded assets when the
// asset is not found, so users can override one asset and keep the defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css       # page stylesheets
//	└── templates/
//	    └── {name}.html      # page shell templates
//
// Asset names are validated to prevent path traversal attacks.
package assets
