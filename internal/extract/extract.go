// Package extract pulls flat element descriptors out of HTML produced by a
// template renderer. It only understands the shape that renderer emits:
// head children concatenated without whitespace and one contiguous run of
// external script elements. It is not an HTML parser.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const (
	headSeparator   = "><"
	scriptSeparator = "></script><"
	scriptClose     = "></script>"
)

var (
	headSpanPattern  = regexp.MustCompile(`(?is)<head>(.*?)</head>`)
	scriptRunPattern = regexp.MustCompile(`(?i)(?:<script\b[^>]*></script>)+`)
	lineBreakPattern = regexp.MustCompile(`\r?\n[ ]*`)
	titlePattern     = regexp.MustCompile(`(?i)^title(?:[\s>/]|$)`)
)

// Head returns the children of the first <head>...</head> span as element
// descriptors, in document order. Closing-tag fragments are dropped.
// Returns nil when the document has no head span.
func Head(doc string) []string {
	m := headSpanPattern.FindStringSubmatch(doc)
	if m == nil {
		return nil
	}

	inner := strings.TrimSpace(m[1])
	inner = strings.TrimPrefix(inner, "<")
	inner = strings.TrimSuffix(inner, ">")
	if inner == "" {
		return nil
	}

	var elements []string
	for _, fragment := range strings.Split(inner, headSeparator) {
		if fragment == "" || strings.HasPrefix(fragment, "/") {
			continue
		}
		elements = append(elements, fragment)
	}
	return elements
}

// Scripts returns the first contiguous run of <script ...></script> elements
// as descriptors. Returns nil when there is none.
func Scripts(doc string) []string {
	run := scriptRunPattern.FindString(doc)
	if run == "" {
		return nil
	}

	run = strings.TrimPrefix(run, "<")
	run = run[:len(run)-len(scriptClose)]
	return strings.Split(run, scriptSeparator)
}

// Strip removes the head span and then the script run from doc.
// Documents without either are returned unchanged.
func Strip(doc string) string {
	doc = removeFirst(doc, headSpanPattern)
	return removeFirst(doc, scriptRunPattern)
}

func removeFirst(doc string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return doc
	}
	return doc[:loc[0]] + doc[loc[1]:]
}

// Flatten removes every line break together with the spaces that follow it.
func Flatten(doc string) string {
	return lineBreakPattern.ReplaceAllString(doc, "")
}

// IsTitle reports whether an element descriptor is a title element.
func IsTitle(element string) bool {
	return titlePattern.MatchString(element)
}

// TitleText returns the decoded text of a title descriptor such as
// "title>Tom &amp; Jerry</title".
func TitleText(element string) string {
	z := html.NewTokenizer(strings.NewReader("<" + element + ">"))

	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.EndTagToken:
			return strings.TrimSpace(b.String())
		}
	}
}
