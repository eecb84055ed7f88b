package html2haml

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-html2haml/internal/assets"
	"github.com/alnah/go-html2haml/internal/extract"
	"github.com/alnah/go-html2haml/internal/fileutil"
	"github.com/alnah/go-html2haml/internal/haml"
)

const (
	hamlExt   = ".haml"
	indexHTML = "index.html"
	indexHaml = "index.haml"
)

// Converter runs the Haml conversion hooks.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	skeleton string // built-in Haml skeleton for targets without a Haml template
}

// New creates a Converter. The converter takes no options: passing any
// returns ErrOptionsNotSupported.
func New(options ...any) (*Converter, error) {
	if len(options) > 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOptionsNotSupported, len(options))
	}

	skeleton, err := assets.NewEmbeddedLoader().LoadSkeleton(assets.DefaultSkeletonName)
	if err != nil {
		return nil, fmt.Errorf("loading default skeleton: %w", err)
	}

	return &Converter{skeleton: skeleton}, nil
}

// IsTarget reports whether doc is converted: its output name ends in .haml
// or its target filetype is haml.
func (c *Converter) IsTarget(doc Document) bool {
	return strings.HasSuffix(doc.OutputName, hamlExt) || strings.EqualFold(doc.Target.Filetype, FiletypeHaml)
}

// PreProcess repairs the indentation of target documents before the host
// injects its asset tags. Other documents are returned unchanged.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) PreProcess(ctx context.Context, doc Document) (result Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = Document{}, fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if !c.IsTarget(doc) {
		return doc, nil
	}

	doc.HTML = haml.Normalize(doc.HTML)
	return doc, nil
}

// PostProcess turns a target document with injection enabled into Haml.
//
// Head elements and the script run are extracted from the injected HTML,
// translated to Haml tag lines, and placed into the skeleton: the document
// itself (stripped of the injected tags) when the target has a .haml, .js or
// Markdown template, the built-in skeleton otherwise. Markdown templates are
// rendered as a Haml page with the converted body under %body. The title element takes the
// target's title. A target named index.html becomes index.haml.
//
// Other documents are returned unchanged.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) PostProcess(ctx context.Context, doc Document, a Assets) (result Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = Document{}, fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if !c.IsTarget(doc) || !doc.Target.Inject.Enabled() {
		return doc, nil
	}

	if doc.Target.Filename == indexHTML {
		doc.OutputName = indexHaml
		doc.Target.Filename = indexHaml
	}

	content := doc.HTML
	templated := hasHamlTemplate(doc.Target.Template)
	if !templated {
		content = extract.Flatten(content)
	}

	head := extract.Head(content)
	for i, element := range head {
		if extract.IsTitle(element) {
			head[i] = titleLine(element, doc.Target.Title)
			continue
		}
		head[i] = haml.Translate(element)
	}

	// In head mode the scripts were injected into the head and are
	// already part of the head elements.
	var scripts []string
	if doc.Target.Inject != InjectHead {
		for _, element := range extract.Scripts(content) {
			scripts = append(scripts, haml.Translate(element))
		}
	}

	skeleton := c.skeleton
	if templated {
		skeleton = extract.Strip(content)
	}

	doc.HTML = haml.InjectAssets(skeleton, head, scripts, a.Manifest)
	return doc, nil
}

// hasHamlTemplate reports whether the target template produces Haml text
// rather than HTML.
func hasHamlTemplate(template string) bool {
	switch fileutil.Ext(template) {
	case ".haml", ".js", ".md", ".markdown":
		return true
	default:
		return false
	}
}

// titleLine renders a title element as a Haml line, using title when set and
// the element's own text otherwise.
func titleLine(element, title string) string {
	if title == "" {
		title = extract.TitleText(element)
	}
	if title == "" {
		return haml.Sigil + "title"
	}
	return haml.Sigil + "title " + title
}
