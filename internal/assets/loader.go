package assets

// Names of the built-in assets.
const (
	DefaultSkeletonName = "default"
	DefaultPageName     = "default"
)

// AssetLoader defines the contract for loading Haml skeletons and HTML pages.
type AssetLoader interface {
	// LoadSkeleton loads a Haml skeleton by name (without .haml extension).
	// Returns ErrSkeletonNotFound if the skeleton doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadSkeleton(name string) (string, error)

	// LoadPage loads an HTML page by name (without .html extension).
	// Returns ErrPageNotFound if the page doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadPage(name string) (string, error)
}
