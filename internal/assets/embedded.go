package assets

import (
	"embed"
	"fmt"
)

//go:embed skeletons/*
var skeletons embed.FS

//go:embed pages/*
var pages embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadSkeleton loads a Haml skeleton from embedded assets by name.
func (e *EmbeddedLoader) LoadSkeleton(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := skeletons.ReadFile("skeletons/" + name + ".haml")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSkeletonNotFound, name)
	}

	return string(content), nil
}

// LoadPage loads an HTML page from embedded assets by name.
func (e *EmbeddedLoader) LoadPage(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := pages.ReadFile("pages/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
