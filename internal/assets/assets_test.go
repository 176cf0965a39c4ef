package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTheme_AllBuiltins(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames {
		css, err := LoadTheme(name)
		if err != nil {
			t.Errorf("LoadTheme(%q) error = %v", name, err)
			continue
		}
		for _, want := range []string{"body", ".toc", ".title-page"} {
			if !strings.Contains(css, want) {
				t.Errorf("theme %q missing %q rule", name, want)
			}
		}
	}
}

func TestLoadTheme_Unknown(t *testing.T) {
	t.Parallel()

	_, err := LoadTheme("solarized")
	if !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("LoadTheme() error = %v, want ErrThemeNotFound", err)
	}
}

func TestIsTheme(t *testing.T) {
	t.Parallel()

	if !IsTheme(DefaultTheme) {
		t.Error("default theme not recognized")
	}
	if IsTheme("") || IsTheme("Github") {
		t.Error("IsTheme matched a non-theme name")
	}
}
