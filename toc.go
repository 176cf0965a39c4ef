package mdpdf

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// tocHTML renders the table of contents as an anchor-link list. Returns ""
// for an empty heading list. Page numbers next to entries are not computed
// here; the rendering engine derives them from the anchor hrefs.
func tocHTML(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<div class=\"toc\">\n")
	b.WriteString("<h1>Table of Contents</h1>\n")
	b.WriteString("<ul>\n")
	for _, h := range headings {
		fmt.Fprintf(&b, "<li class=\"toc-h%d\"><a href=\"#%s\">%s</a></li>\n",
			h.Level, h.AnchorID, html.EscapeString(h.Text))
	}
	b.WriteString("</ul>\n")
	b.WriteString("</div>\n")
	return b.String()
}

// defaultDateLayout renders dates as "Month DD, YYYY".
const defaultDateLayout = "January 02, 2006"

// titlePageHTML renders a minimal title page block. The author line is
// omitted entirely when empty; an empty title falls back to "Untitled".
func titlePageHTML(meta Metadata, now time.Time, dateLayout string) string {
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = "Untitled"
	}
	if dateLayout == "" {
		dateLayout = defaultDateLayout
	}

	var b strings.Builder
	b.WriteString("<div class=\"title-page\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	if author := strings.TrimSpace(meta.Author); author != "" {
		fmt.Fprintf(&b, "<p class=\"author\">%s</p>\n", html.EscapeString(author))
	}
	fmt.Fprintf(&b, "<p class=\"date\">%s</p>\n", now.Format(dateLayout))
	b.WriteString("</div>\n")
	return b.String()
}
