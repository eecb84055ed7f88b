package haml

import (
	"regexp"
	"strings"
)

// Sigil marks a line as a Haml element declaration.
const Sigil = "%"

// Precompiled boundary patterns.
var (
	headLinePattern = regexp.MustCompile(`(?i)^[ \t]*%head\b`)
	bodyLinePattern = regexp.MustCompile(`(?i)^[ \t]*%body\b`)
	htmlLinePattern = regexp.MustCompile(`(?i)^[ \t]*%html\b`)

	quotedPattern = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'`)

	// Matches :manifest =>, manifest: and (manifest=...) once quotes are masked.
	manifestKeyPattern = regexp.MustCompile(`(?i)(?:^|[\s{,(]):?manifest\s*(?:=>|=|:)`)
)

// Indentation returns the leading run of spaces and tabs of line.
func Indentation(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// IsBlank reports whether line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsHeadLine reports whether line declares a %head element at any indentation.
func IsHeadLine(line string) bool {
	return headLinePattern.MatchString(line)
}

// IsBodyLine reports whether line declares a %body element at any indentation.
func IsBodyLine(line string) bool {
	return bodyLinePattern.MatchString(line)
}

// IsHTMLLine reports whether line declares an %html element at any indentation.
func IsHTMLLine(line string) bool {
	return htmlLinePattern.MatchString(line)
}

// IsTopLevelHTMLLine reports whether line declares the %html element at column zero.
func IsTopLevelHTMLLine(line string) bool {
	return IsHTMLLine(line) && Indentation(line) == ""
}

// HasManifest reports whether an element line already declares a manifest
// attribute. Only key positions count: quoted strings are masked first, and a
// quoted key such as "manifest" => is kept as a bare key.
func HasManifest(line string) bool {
	masked := quotedPattern.ReplaceAllStringFunc(line, func(quoted string) string {
		if strings.EqualFold(quoted[1:len(quoted)-1], "manifest") {
			return "manifest"
		}
		return `""`
	})
	return manifestKeyPattern.MatchString(masked)
}

// findLine returns the index of the first line at or after from that satisfies
// pred, or -1.
func findLine(lines []string, from int, pred func(string) bool) int {
	for i := from; i < len(lines); i++ {
		if pred(lines[i]) {
			return i
		}
	}
	return -1
}

// locateBody returns the index of the %body line that anchors the body block.
// When a %head line exists, only a %body sibling at the same indentation counts.
func locateBody(lines []string) int {
	head := findLine(lines, 0, IsHeadLine)
	if head < 0 {
		return findLine(lines, 0, IsBodyLine)
	}

	indent := Indentation(lines[head])
	return findLine(lines, 0, func(line string) bool {
		return IsBodyLine(line) && Indentation(line) == indent
	})
}
