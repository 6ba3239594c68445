package assets

// Default asset names used when no override is configured.
const (
	DefaultStyle    = "docs"
	DefaultTemplate = "docs"
)

// AssetLoader defines the contract for loading CSS styles and page templates.
// Implementations may load from embedded assets, the filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
