package haml

import (
	"regexp"
	"strings"
)

var trailingNewlinesPattern = regexp.MustCompile(`\n{2,}$`)

// Normalize repairs the indentation of a Haml document produced by an
// upstream template renderer. Line endings are normalized first, then
// trailing newlines are collapsed, then the %head and %body blocks are
// realigned.
func Normalize(doc string) string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	doc = CollapseTrailingNewlines(doc)
	doc = AlignHead(doc)
	return AlignBody(doc)
}

// CollapseTrailingNewlines reduces two or more trailing line breaks to one.
func CollapseTrailingNewlines(doc string) string {
	return trailingNewlinesPattern.ReplaceAllString(doc, "\n")
}

// AlignHead indents flush-left lines between the first %head line and the
// following %body line to the indentation of the first %head child.
// Lines that are already indented keep their indentation.
func AlignHead(doc string) string {
	lines := strings.Split(doc, "\n")

	head := findLine(lines, 0, IsHeadLine)
	if head < 0 {
		return doc
	}
	body := findLine(lines, head+1, IsBodyLine)
	if body < 0 {
		return doc
	}

	first := findLine(lines[:body], head+1, func(line string) bool { return !IsBlank(line) })
	if first < 0 {
		return doc
	}
	indent := Indentation(lines[first])

	for i := head + 1; i < body; i++ {
		line := strings.TrimRight(lines[i], " \t")
		if line != "" && Indentation(line) == "" {
			line = indent + line
		}
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}

// AlignBody shifts the tail of the %body block that an upstream renderer
// emitted too shallow.
//
// The line right after %body is kept. From then on, the first non-blank line
// indented less than %body sets a latch; it and every later non-blank line
// get twice the %body indentation prepended. The latch never resets. This is
// reliable only for one flat run of shallow siblings after one deeper block.
func AlignBody(doc string) string {
	lines := strings.Split(doc, "\n")

	body := locateBody(lines)
	if body < 0 {
		return doc
	}

	indent := Indentation(lines[body])
	shift := strings.Repeat(indent, 2)

	latched := false
	for i := body + 2; i < len(lines); i++ {
		line := lines[i]
		if IsBlank(line) {
			lines[i] = ""
			continue
		}
		if latched || len(Indentation(line)) < len(indent) {
			latched = true
			lines[i] = shift + line
		}
	}

	return strings.Join(lines, "\n")
}
