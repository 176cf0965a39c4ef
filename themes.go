package mdpdf

import (
	"fmt"
	"os"

	"github.com/mdpdf/mdpdf/internal/assets"
)

// AvailableThemes lists the built-in theme names.
func AvailableThemes() []string {
	names := make([]string, len(assets.ThemeNames))
	copy(names, assets.ThemeNames)
	return names
}

// ThemeCSS returns the CSS for a built-in theme.
func ThemeCSS(name string) (string, error) {
	css, err := assets.LoadTheme(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return css, nil
}

// CustomCSS reads an external stylesheet from disk.
func CustomCSS(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-selected stylesheet
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrCSSNotFound, path)
		}
		return "", fmt.Errorf("reading CSS file %s: %w", path, err)
	}
	return string(content), nil
}

// resolveStyleCSS picks the visual stylesheet for a run. Exactly one of
// theme or cssPath may be set; supplying both is rejected before any file
// access. Neither set selects the default theme.
func resolveStyleCSS(theme, cssPath string) (string, error) {
	if theme != "" && cssPath != "" {
		return "", ErrStyleConflict
	}
	if cssPath != "" {
		return CustomCSS(cssPath)
	}
	if theme == "" {
		theme = assets.DefaultTheme
	}
	return ThemeCSS(theme)
}
