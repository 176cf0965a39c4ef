// Package assets provides the built-in theme stylesheets embedded at
// compile time. Theme names are a fixed, closed set; unknown names are a
// configuration error, never a silent fallback.
package assets

import (
	"embed"
	"errors"
	"fmt"
)

//go:embed themes/*.css
var themes embed.FS

// ErrThemeNotFound indicates the requested theme does not exist.
var ErrThemeNotFound = errors.New("theme not found")

// ThemeNames lists the built-in themes in presentation order.
var ThemeNames = []string{"github", "minimal", "academic", "dark", "modern"}

// DefaultTheme is used when no theme or custom CSS is selected.
const DefaultTheme = "github"

// LoadTheme returns the CSS for a built-in theme by name.
func LoadTheme(name string) (string, error) {
	if !IsTheme(name) {
		return "", fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	content, err := themes.ReadFile("themes/" + name + ".css")
	if err != nil {
		// Embedded file missing for a listed name is a build defect.
		return "", fmt.Errorf("%w: %q: %v", ErrThemeNotFound, name, err)
	}
	return string(content), nil
}

// IsTheme reports whether name is a known built-in theme.
func IsTheme(name string) bool {
	for _, t := range ThemeNames {
		if t == name {
			return true
		}
	}
	return false
}
