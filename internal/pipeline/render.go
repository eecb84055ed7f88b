package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"os"
	"strings"
	texttemplate "text/template"

	"github.com/alnah/go-html2haml/internal/assets"
	"github.com/alnah/go-html2haml/internal/fileutil"
	"github.com/alnah/go-html2haml/internal/haml"
)

// Sentinel errors for page rendering.
var (
	ErrUnsupportedTemplate = errors.New("unsupported template type")
	ErrReadTemplate        = errors.New("failed to read template")
	ErrTemplateRender      = errors.New("template rendering failed")
)

// Page describes the source document of one output target.
type Page struct {
	Template string // path to an .html, .haml or .md file; empty uses the built-in page
	Title    string
	Haml     bool // lay Markdown sources out as a Haml page instead of the built-in HTML page
}

// titleData is the data passed to page templates.
type titleData struct {
	Title string
}

// Renderer produces the HTML (or Haml template text) for a Page.
type Renderer struct {
	loader   assets.AssetLoader
	markdown MarkdownConverter
}

// NewRenderer creates a Renderer that takes its built-in page from loader.
func NewRenderer(loader assets.AssetLoader) *Renderer {
	return &Renderer{
		loader:   loader,
		markdown: NewGoldmarkConverter(),
	}
}

// Render renders page according to its template extension.
// Markdown output is placed in the built-in page body, or under %body of the
// built-in Haml skeleton when page.Haml is set. When the page has no title
// the first heading is used.
func (r *Renderer) Render(ctx context.Context, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if page.Template == "" {
		return r.renderBuiltin(page.Title)
	}

	switch fileutil.Ext(page.Template) {
	case ".html", ".htm":
		content, err := readTemplate(page.Template)
		if err != nil {
			return "", err
		}
		return executeHTML(page.Template, content, page.Title)

	case ".haml":
		content, err := readTemplate(page.Template)
		if err != nil {
			return "", err
		}
		return executeText(page.Template, content, page.Title)

	case ".md", ".markdown":
		content, err := readTemplate(page.Template)
		if err != nil {
			return "", err
		}
		body, err := r.markdown.ToHTML(ctx, content)
		if err != nil {
			return "", err
		}
		title := page.Title
		if title == "" {
			title = FirstHeading(body)
		}
		if page.Haml {
			return r.renderHamlPage(title, body)
		}
		doc, err := r.renderBuiltin(title)
		if err != nil {
			return "", err
		}
		return insertBody(doc, body), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTemplate, page.Template)
	}
}

func (r *Renderer) renderBuiltin(title string) (string, error) {
	content, err := r.loader.LoadPage(assets.DefaultPageName)
	if err != nil {
		return "", err
	}
	return executeHTML(assets.DefaultPageName, content, title)
}

// renderHamlPage places a %title line in the skeleton head and the lines of
// fragment, as plain text, under %body. Blank lines are dropped.
func (r *Renderer) renderHamlPage(title, fragment string) (string, error) {
	skeleton, err := r.loader.LoadSkeleton(assets.DefaultSkeletonName)
	if err != nil {
		return "", err
	}

	titleLine := haml.Sigil + "title"
	if title != "" {
		titleLine += " " + title
	}

	var body []string
	for _, line := range strings.Split(fragment, "\n") {
		if strings.TrimSpace(line) != "" {
			body = append(body, line)
		}
	}

	return haml.InjectAssets(skeleton, []string{titleLine}, body, ""), nil
}

func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- template path comes from user config
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
	}
	return string(data), nil
}

func executeHTML(name, content, title string) (string, error) {
	tmpl, err := htmltemplate.New(name).Parse(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, titleData{Title: title}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

func executeText(name, content, title string) (string, error) {
	tmpl, err := texttemplate.New(name).Parse(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, titleData{Title: title}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// insertBody places fragment before </body>, or appends it when the page
// has no body close tag.
func insertBody(doc, fragment string) string {
	if s := scanStructure(doc); s.bodyClose >= 0 {
		return insertAt(doc, s.bodyClose, fragment)
	}
	return strings.TrimRight(doc, "\n") + fragment
}
