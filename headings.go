package mdpdf

import (
	"html"
	"regexp"
	"strings"
)

// Heading is one h1/h2 element extracted from a rendered HTML fragment.
type Heading struct {
	Text     string
	Level    int // 1 or 2
	AnchorID string
}

// headingPattern matches h1/h2 elements with attributes in any order,
// tolerating tags that span multiple lines.
// Captures: 1=level, 2=attributes, 3=inner HTML.
var headingPattern = regexp.MustCompile(`(?is)<h([12])((?:\s[^>]*)?)>(.*?)</h[12]\s*>`)

// idAttrPattern extracts an id attribute from an opening tag's attribute list.
var idAttrPattern = regexp.MustCompile(`(?i)\bid\s*=\s*"([^"]*)"`)

// validAnchorID is the accepted format for explicit, source-declared ids.
var validAnchorID = regexp.MustCompile(`^[a-zA-Z][\w-]*$`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// extractHeadings scans an HTML fragment for h1/h2 elements in document
// order. An explicit well-formed id is kept verbatim and registered so the
// generator cannot reuse it; a missing or malformed id is replaced with a
// generated one keyed on the heading text. Headings whose text is empty
// after stripping tags are skipped.
func extractHeadings(fragment string) []Heading {
	matches := headingPattern.FindAllStringSubmatch(fragment, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		level := 1
		if m[1] == "2" {
			level = 2
		}

		text := stripHTMLTags(m[3])
		if text == "" {
			continue
		}

		id := explicitAnchorID(m[2])
		if id != "" {
			// Trusted as-is: registered against later generation, but not
			// re-deduplicated.
			seen[id] = struct{}{}
		} else {
			id = generateAnchorID(text, seen)
		}

		headings = append(headings, Heading{Text: text, Level: level, AnchorID: id})
	}
	return headings
}

// applyAnchorIDs rewrites the fragment so each extracted heading carries its
// resolved anchor id, keeping table-of-contents links valid even when the
// source declared a malformed id or none at all. Headings skipped by
// extraction (empty text) are left untouched.
func applyAnchorIDs(fragment string, headings []Heading) string {
	next := 0
	return headingPattern.ReplaceAllStringFunc(fragment, func(match string) string {
		if next >= len(headings) {
			return match
		}
		m := headingPattern.FindStringSubmatch(match)
		if stripHTMLTags(m[3]) == "" {
			return match
		}

		id := headings[next].AnchorID
		next++

		attrs := m[2]
		idAttr := `id="` + id + `"`
		if idAttrPattern.MatchString(attrs) {
			attrs = idAttrPattern.ReplaceAllString(attrs, idAttr)
		} else {
			attrs += " " + idAttr
		}
		return "<h" + m[1] + attrs + ">" + m[3] + "</h" + m[1] + ">"
	})
}

// explicitAnchorID returns a well-formed id declared in the attribute list,
// or "" when absent or malformed.
func explicitAnchorID(attrs string) string {
	m := idAttrPattern.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	id := strings.TrimSpace(m[1])
	if !validAnchorID.MatchString(id) {
		return ""
	}
	return id
}

// stripHTMLTags removes nested tags, decodes entities, and trims whitespace.
func stripHTMLTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTagPattern.ReplaceAllString(s, "")))
}
