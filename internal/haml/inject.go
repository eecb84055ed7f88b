package haml

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// htmlAttributesPattern splits a top-level %html line into its tag part, an
// optional attribute hash body, and the hash's closing brace.
var htmlAttributesPattern = regexp.MustCompile(`^(%(?i:html)[^{]*)(\{[^}]*)?(\})?$`)

// InjectAssets places translated head and body lines into a Haml skeleton and
// embeds the manifest reference on the %html line.
//
// Head lines are spliced right before the %body line, under a synthesized
// %head when the skeleton has none. They are skipped when there is no %body
// line. Body lines are appended at the end of the document. Both are
// indented one level below %head (or %body).
func InjectAssets(doc string, head, body []string, manifest string) string {
	lines := strings.Split(doc, "\n")

	headIdx := findLine(lines, 0, IsHeadLine)
	bodyIdx := locateBody(lines)

	base := ""
	switch {
	case headIdx >= 0:
		base = Indentation(lines[headIdx])
	case bodyIdx >= 0:
		base = Indentation(lines[bodyIdx])
	}
	child := childIndent(lines, base)

	if len(head) > 0 && bodyIdx >= 0 {
		block := indentLines(head, child)
		if headIdx < 0 {
			block = append([]string{base + Sigil + "head"}, block...)
		}
		lines = slices.Insert(lines, bodyIdx, block...)
	}

	doc = strings.Join(lines, "\n")

	if len(body) > 0 {
		doc = strings.TrimRight(doc, "\n") + "\n" + strings.Join(indentLines(body, child), "\n")
	}

	return InjectManifest(doc, manifest)
}

// InjectManifest adds a manifest attribute to the top-level %html line.
// Documents without such a line, or whose %html line already declares a
// manifest or opens a multi-line hash, are returned unchanged.
func InjectManifest(doc, manifest string) string {
	if manifest == "" {
		return doc
	}

	lines := strings.Split(doc, "\n")
	i := findLine(lines, 0, IsTopLevelHTMLLine)
	if i < 0 || HasManifest(lines[i]) {
		return doc
	}

	m := htmlAttributesPattern.FindStringSubmatch(strings.TrimRight(lines[i], " \t"))
	if m == nil {
		return doc
	}

	entry := ":manifest => " + strconv.Quote(manifest)
	switch {
	case m[2] == "":
		lines[i] = m[1] + "{ " + entry + " }"
	case m[3] == "":
		return doc
	default:
		if inner := strings.TrimSpace(m[2][1:]); inner != "" {
			lines[i] = m[1] + "{ " + inner + ", " + entry + " }"
		} else {
			lines[i] = m[1] + "{ " + entry + " }"
		}
	}

	return strings.Join(lines, "\n")
}

// childIndent is base doubled, less the indentation of the %html line.
func childIndent(lines []string, base string) string {
	child := strings.Repeat(base, 2)
	if i := findLine(lines, 0, IsHTMLLine); i >= 0 {
		if n := len(Indentation(lines[i])); n <= len(child) {
			child = child[n:]
		}
	}
	return child
}

func indentLines(lines []string, indent string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = indent + line
	}
	return out
}
