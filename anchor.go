package mdpdf

import (
	"regexp"
	"strconv"
	"strings"
)

// anchorFallback is used when heading text sanitizes down to nothing.
const anchorFallback = "heading"

var (
	invalidAnchorChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns         = regexp.MustCompile(`-{2,}`)
)

// generateAnchorID turns heading text into a URL/CSS-safe identifier that is
// unique within seen. The chosen id is reserved in seen before returning.
// Always returns a non-empty string.
func generateAnchorID(text string, seen map[string]struct{}) string {
	id := strings.ToLower(text)
	id = strings.ReplaceAll(id, " ", "-")
	id = invalidAnchorChars.ReplaceAllString(id, "")
	id = hyphenRuns.ReplaceAllString(id, "-")
	id = strings.Trim(id, "-")
	if id == "" {
		id = anchorFallback
	}

	if _, taken := seen[id]; !taken {
		seen[id] = struct{}{}
		return id
	}

	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, taken := seen[candidate]; !taken {
			seen[candidate] = struct{}{}
			return candidate
		}
	}
}
