package main

import (
	"errors"
	"os"

	html2haml "github.com/alnah/go-html2haml"
	"github.com/alnah/go-html2haml/internal/assets"
	"github.com/alnah/go-html2haml/internal/config"
	"github.com/alnah/go-html2haml/internal/pipeline"
)

// Exit codes for html2haml CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or templates
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidInject) ||
		errors.Is(err, config.ErrInvalidFiletype) ||
		errors.Is(err, config.ErrInvalidFilename) ||
		errors.Is(err, config.ErrDuplicateTarget) ||
		errors.Is(err, config.ErrTooManyTargets) ||
		errors.Is(err, html2haml.ErrInvalidInjectMode) ||
		errors.Is(err, html2haml.ErrOptionsNotSupported) ||
		errors.Is(err, pipeline.ErrUnsupportedTemplate) ||
		errors.Is(err, pipeline.ErrTemplateRender) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, assets.ErrSkeletonNotFound) ||
		errors.Is(err, assets.ErrPageNotFound) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrAmbiguousTarget) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pipeline.ErrReadTemplate) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
