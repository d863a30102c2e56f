// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode"
)

// heading is a category heading and the byte offset where its line starts.
type heading struct {
	offset int
	title  string
}

// scanHeadings walks content line by line and records every heading of the
// given level. Deeper or shallower headings are ignored, so an entry under a
// "####" subsection still belongs to the enclosing "###" category.
func scanHeadings(content string, level int) []heading {
	var headings []heading
	offset := 0

	for _, line := range strings.SplitAfter(content, "\n") {
		if title, ok := parseHeading(line, level); ok {
			headings = append(headings, heading{offset: offset, title: title})
		}
		offset += len(line)
	}

	return headings
}

// parseHeading returns the title of line if it is a heading of exactly level.
func parseHeading(line string, level int) (string, bool) {
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	prefix := strings.Repeat("#", level)
	if !strings.HasPrefix(trimmed, prefix) {
		return "", false
	}
	rest := trimmed[len(prefix):]
	if strings.HasPrefix(rest, "#") {
		return "", false
	}
	return stripHeadingPrefix(rest), true
}

// stripHeadingPrefix removes the whitespace between the hashes and the title.
func stripHeadingPrefix(rest string) string {
	return strings.TrimSpace(rest)
}

// activeHeading returns the last heading that starts before offset.
func activeHeading(headings []heading, offset int) (string, bool) {
	var title string
	found := false
	for _, h := range headings {
		if h.offset >= offset {
			break
		}
		title, found = h.title, true
	}
	return title, found
}

// searchHeading reproduces the older lookup: scan "###" occurrences from the
// top of the document and take the first one whose title is free of '#' and
// whose following text mentions name anywhere. The title runs to the next
// blank line. Because any later mention qualifies, this usually yields the
// first heading of the document rather than the entry's own section.
func searchHeading(content, name string) (string, bool) {
	from := 0
	for {
		i := strings.Index(content[from:], "###")
		if i < 0 {
			return "", false
		}
		start := from + i + len("###")
		from = from + i + 1

		body := strings.TrimLeftFunc(content[start:], unicode.IsSpace)
		titleStart := len(content) - len(body)

		titleEnd := len(content)
		if j := strings.Index(body, "\n\n"); j >= 0 {
			titleEnd = titleStart + j
		}
		title := content[titleStart:titleEnd]
		if title == "" || strings.Contains(title, "#") {
			continue
		}

		if strings.Contains(content[titleEnd:], name) {
			return strings.TrimSpace(title), true
		}
	}
}
