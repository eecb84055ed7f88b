package haml

import (
	"regexp"
	"strings"
)

var (
	// attributePattern matches one ` name="value"` pair. Unquoted and
	// single-quoted attributes are not recognized.
	attributePattern = regexp.MustCompile(`\s+([\w-]+)="([^"]*)"`)

	// symbolNamePattern matches attribute names usable as bare Ruby symbols.
	symbolNamePattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// Translate converts one flat HTML element string (without its angle brackets)
// into one Haml tag line.
//
//	meta charset="utf-8"                  -> %meta{ :charset => "utf-8" }
//	link href="a.css" rel="stylesheet"    -> %link{ :href => "a.css", :rel => "stylesheet" }
//	%title App                            -> %title App
//
// Strings that already start with the sigil are returned unchanged. Text that
// is not a double-quoted attribute is kept as is.
func Translate(element string) string {
	if strings.HasPrefix(element, Sigil) {
		return element
	}

	tag := Sigil + element
	if !strings.Contains(tag, "=") {
		return tag
	}

	matches := attributePattern.FindAllStringSubmatchIndex(tag, -1)
	if len(matches) == 0 {
		return tag
	}

	prefix := strings.TrimRight(tag[:matches[0][0]], " \t")

	entries := make([]string, 0, len(matches))
	var rest []string
	for i, m := range matches {
		entries = append(entries, hashEntry(tag[m[2]:m[3]], tag[m[4]:m[5]]))

		end := len(tag)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if fragment := strings.TrimSpace(tag[m[1]:end]); fragment != "" {
			rest = append(rest, fragment)
		}
	}

	return prefix + "{ " + strings.Join(entries, ", ") + " }" + trailingContent(tagName(prefix), rest)
}

// hashEntry renders one attribute as a Ruby hash entry.
func hashEntry(name, value string) string {
	key := ":" + name
	if !symbolNamePattern.MatchString(name) {
		key = `:"` + name + `"`
	}
	return key + ` => "` + value + `"`
}

// tagName returns the element name of a sigil-prefixed fragment.
func tagName(prefix string) string {
	name := strings.TrimPrefix(prefix, Sigil)
	if i := strings.IndexAny(name, " \t>/"); i >= 0 {
		name = name[:i]
	}
	return name
}

// trailingContent renders fragments found after the attributes. A lone "/"
// becomes the Haml self-closing marker; element text (">Hello</a") becomes
// inline content.
func trailingContent(name string, fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}

	text := strings.Join(fragments, " ")
	if text == "/" {
		return "/"
	}

	text = strings.TrimPrefix(text, ">")
	if closing := "</" + name; name != "" && strings.HasSuffix(strings.ToLower(text), strings.ToLower(closing)) {
		text = text[:len(text)-len(closing)]
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return " " + text
}
