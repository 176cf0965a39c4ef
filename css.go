package mdpdf

import (
	"fmt"
	"strings"
)

// Placeholder tokens recognized in page number format templates.
const (
	placeholderPage  = "{page}"
	placeholderPages = "{pages}"
)

// marginBoxes maps page number positions to @page margin-box selectors.
var marginBoxes = map[string]string{
	PositionLeft:   "@bottom-left",
	PositionCenter: "@bottom-center",
	PositionRight:  "@bottom-right",
}

// pageCSS emits the @page rule carrying size and margins verbatim from
// configuration, with the page-number margin box nested inside when enabled.
func pageCSS(cfg Config) (string, error) {
	numberCSS, err := pageNumberCSS(cfg.PageNumbers)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("@page {\n")
	fmt.Fprintf(&b, "  size: %s;\n", cfg.PageSize)
	fmt.Fprintf(&b, "  margin-top: %s;\n", cfg.MarginTop)
	fmt.Fprintf(&b, "  margin-bottom: %s;\n", cfg.MarginBottom)
	fmt.Fprintf(&b, "  margin-left: %s;\n", cfg.MarginLeft)
	fmt.Fprintf(&b, "  margin-right: %s;\n", cfg.MarginRight)
	b.WriteString(numberCSS)
	b.WriteString("}\n")
	return b.String(), nil
}

// pageNumberCSS builds the margin-box rule for page numbers.
// Returns "" when page numbers are disabled.
func pageNumberCSS(pn PageNumbers) (string, error) {
	if !pn.Enabled {
		return "", nil
	}

	box, ok := marginBoxes[pn.Position]
	if !ok {
		return "", fmt.Errorf("%w: %q (must be left, center, or right)",
			ErrInvalidPageNumberPosition, pn.Position)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s {\n", box)
	fmt.Fprintf(&b, "    content: %s;\n", pageNumberContent(pn.Format))
	b.WriteString("    font-size: 9pt;\n")
	b.WriteString("    color: #666;\n")
	b.WriteString("  }\n")
	return b.String(), nil
}

// pageNumberContent translates a format template into a CSS content value:
// a space-joined sequence of quoted literal segments and counter references.
// The template is scanned left to right; at each position the first
// occurrence of {page} or {pages} wins.
func pageNumberContent(format string) string {
	var tokens []string
	rest := format
	for rest != "" {
		iPage := strings.Index(rest, placeholderPage)
		iPages := strings.Index(rest, placeholderPages)

		var at int
		var counter, placeholder string
		switch {
		case iPage == -1 && iPages == -1:
			at = -1
		case iPages == -1 || (iPage != -1 && iPage < iPages):
			at, counter, placeholder = iPage, "counter(page)", placeholderPage
		default:
			at, counter, placeholder = iPages, "counter(pages)", placeholderPages
		}

		if at == -1 {
			tokens = append(tokens, quoteCSSString(rest))
			break
		}
		if at > 0 {
			tokens = append(tokens, quoteCSSString(rest[:at]))
		}
		tokens = append(tokens, counter)
		rest = rest[at+len(placeholder):]
	}

	if len(tokens) == 0 {
		return `""`
	}
	return strings.Join(tokens, " ")
}

// quoteCSSString wraps text in double quotes, escaped for safe use as a CSS
// string token.
func quoteCSSString(s string) string {
	return `"` + escapeCSSString(s) + `"`
}

// escapeCSSString escapes backslashes, quotes, and newlines so user text
// cannot break out of a CSS string literal.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", `\A `)
	return s
}

// sanitizeCSS escapes sequences that could close the <style> block the
// assembled CSS is injected into.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
