// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := filepath.Join(".config", "go-html2haml")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsupportedTemplate returns hints for templates the renderer cannot execute.
func ForUnsupportedTemplate() string {
	return format("supported templates: .html, .haml, .md; render JavaScript templates upstream")
}

// ForInjectMode returns hints for invalid inject values.
func ForInjectMode() string {
	return format("inject accepts true, false, head or body")
}

// ForAssetNotFound returns hints for missing skeletons or pages under a custom asset path.
func ForAssetNotFound(kind, basePath string) string {
	if basePath == "" {
		return format("only the built-in " + kind + " \"default\" is embedded")
	}
	return format("place " + kind + " files under " + filepath.Join(basePath, kind+"s"))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
