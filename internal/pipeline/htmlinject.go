package pipeline

import (
	"context"
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

// AssetTags lists the asset references a page links to.
type AssetTags struct {
	Stylesheets   []string
	Scripts       []string
	ScriptsInHead bool // scripts go into <head> instead of before </body>
}

// TagInjector defines the contract for asset tag injection into HTML.
type TagInjector interface {
	InjectTags(ctx context.Context, htmlContent string, tags AssetTags) string
}

// TagInjection injects <link> and <script> tags into HTML content.
type TagInjection struct{}

// InjectTags inserts stylesheet links into the head and script tags before
// </body> (or into the head when ScriptsInHead is set).
//
// Head tags go before </head>, else right after <head>, else into a new
// <head> after <html>, else into a new <head> prepended to the document.
// Body tags go before </body>, else they are appended. Tags are written
// back to back with no whitespace between them.
func (t *TagInjection) InjectTags(ctx context.Context, htmlContent string, tags AssetTags) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	var head, body strings.Builder
	for _, href := range tags.Stylesheets {
		head.WriteString(`<link href="` + html.EscapeString(href) + `" rel="stylesheet">`)
	}
	scripts := &body
	if tags.ScriptsInHead {
		scripts = &head
	}
	for _, src := range tags.Scripts {
		scripts.WriteString(`<script type="text/javascript" src="` + html.EscapeString(src) + `"></script>`)
	}

	htmlContent = injectHead(htmlContent, head.String())
	return injectBody(htmlContent, body.String())
}

func injectHead(doc, tags string) string {
	if tags == "" {
		return doc
	}

	s := scanStructure(doc)
	switch {
	case s.headClose >= 0:
		return insertAt(doc, s.headClose, tags)
	case s.headOpenEnd >= 0:
		return insertAt(doc, s.headOpenEnd, tags)
	case s.htmlOpenEnd >= 0:
		return insertAt(doc, s.htmlOpenEnd, "<head>"+tags+"</head>")
	default:
		return "<head>" + tags + "</head>" + doc
	}
}

func injectBody(doc, tags string) string {
	if tags == "" {
		return doc
	}

	if s := scanStructure(doc); s.bodyClose >= 0 {
		return insertAt(doc, s.bodyClose, tags)
	}
	return doc + tags
}

func insertAt(doc string, offset int, fragment string) string {
	return doc[:offset] + fragment + doc[offset:]
}

// structure holds byte offsets of the document landmarks; -1 when absent.
type structure struct {
	htmlOpenEnd int // just after <html ...>
	headOpenEnd int // just after <head ...>
	headClose   int // at </head>
	bodyClose   int // at </body>
}

// scanStructure tokenizes doc once and records the first occurrence of each
// landmark. Text that is not HTML (a Haml document) yields no landmarks.
func scanStructure(doc string) structure {
	s := structure{htmlOpenEnd: -1, headOpenEnd: -1, headClose: -1, bodyClose: -1}

	z := nethtml.NewTokenizer(strings.NewReader(doc))
	pos := 0
	for {
		tt := z.Next()
		if tt == nethtml.ErrorToken {
			return s
		}

		start := pos
		pos += len(z.Raw())

		name, _ := z.TagName()
		switch {
		case tt == nethtml.StartTagToken && string(name) == "html" && s.htmlOpenEnd < 0:
			s.htmlOpenEnd = pos
		case tt == nethtml.StartTagToken && string(name) == "head" && s.headOpenEnd < 0:
			s.headOpenEnd = pos
		case tt == nethtml.EndTagToken && string(name) == "head" && s.headClose < 0:
			s.headClose = start
		case tt == nethtml.EndTagToken && string(name) == "body" && s.bodyClose < 0:
			s.bodyClose = start
		}
	}
}

// HasHead reports whether doc contains a <head> start tag.
func HasHead(doc string) bool {
	return scanStructure(doc).headOpenEnd >= 0
}
