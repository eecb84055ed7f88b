package html2haml

import (
	"fmt"
	"strings"
)

// Target filetypes.
const (
	FiletypeHTML = "html"
	FiletypeHaml = "haml"
)

// InjectMode selects how generated assets are injected into a target.
type InjectMode int

const (
	InjectNone InjectMode = iota // no injection (false or absent)
	InjectTrue                   // stylesheets in head, scripts in body
	InjectHead                   // everything in head
	InjectBody                   // stylesheets in head, scripts in body
)

// ParseInjectMode parses an inject option value: "", "false", "true", "head"
// or "body", case-insensitively.
func ParseInjectMode(s string) (InjectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false":
		return InjectNone, nil
	case "true":
		return InjectTrue, nil
	case "head":
		return InjectHead, nil
	case "body":
		return InjectBody, nil
	default:
		return InjectNone, fmt.Errorf("%w: %q", ErrInvalidInjectMode, s)
	}
}

// Enabled reports whether assets are injected at all.
func (m InjectMode) Enabled() bool {
	return m != InjectNone
}

// String returns the option spelling of m.
func (m InjectMode) String() string {
	switch m {
	case InjectTrue:
		return "true"
	case InjectHead:
		return "head"
	case InjectBody:
		return "body"
	default:
		return "false"
	}
}

// OutputTarget holds the per-file options of one generated template.
type OutputTarget struct {
	Filename string     // Name of the generated file, e.g. "index.html"
	Filetype string     // "html" or "haml"
	Inject   InjectMode // Where generated assets go
	Template string     // Source template path; .haml and .js templates keep their own skeleton
	Title    string     // Replaces the text of the page's title element
}

// Document is one generated file moving through the conversion hooks.
// Hooks take and return Documents by value.
type Document struct {
	HTML       string // Document text: HTML before PostProcess, Haml after
	OutputName string // File name the host writes to
	Target     OutputTarget
}

// Assets are the references generated for the build.
// The converter reads only Manifest; CSS and JS are for the host's own
// HTML injection.
type Assets struct {
	Manifest string
	CSS      []string
	JS       []string
}
