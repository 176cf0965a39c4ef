package mdpdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Environment-backed tests use t.Setenv, so no t.Parallel here.

func TestLoadConfig_Defaults(t *testing.T) {
	for _, name := range []string{
		"PDF_PAGE_SIZE", "PDF_MARGIN_TOP", "PDF_MARGIN_BOTTOM",
		"PDF_MARGIN_LEFT", "PDF_MARGIN_RIGHT", "DEFAULT_OUTPUT_DIR",
		"PRESERVE_DIRECTORY_STRUCTURE", "ENABLE_PAGE_NUMBERS",
		"PAGE_NUMBER_POSITION", "PAGE_NUMBER_FORMAT",
		"PDF_TITLE", "PDF_AUTHOR", "PDF_SUBJECT", "PDF_KEYWORDS",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cfg, warnings, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("LoadConfig() warnings = %v, want none", warnings)
	}
	if cfg.PageSize != "A4" || cfg.MarginTop != "2cm" || !cfg.PreserveStructure {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
	if cfg.PageNumbers.Enabled {
		t.Error("page numbers enabled by default")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PDF_PAGE_SIZE", "Letter")
	t.Setenv("PDF_MARGIN_TOP", "1in")
	t.Setenv("ENABLE_PAGE_NUMBERS", "TRUE")
	t.Setenv("PAGE_NUMBER_POSITION", "right")
	t.Setenv("PAGE_NUMBER_FORMAT", "{page}/{pages}")
	t.Setenv("PRESERVE_DIRECTORY_STRUCTURE", "false")
	t.Setenv("PDF_TITLE", "Handbook")
	t.Setenv("PDF_KEYWORDS", "go, pdf")

	cfg, _, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.PageSize != "Letter" {
		t.Errorf("PageSize = %q", cfg.PageSize)
	}
	if cfg.MarginTop != "1in" {
		t.Errorf("MarginTop = %q", cfg.MarginTop)
	}
	if !cfg.PageNumbers.Enabled {
		t.Error("ENABLE_PAGE_NUMBERS=TRUE not honored")
	}
	if cfg.PageNumbers.Position != "right" {
		t.Errorf("Position = %q", cfg.PageNumbers.Position)
	}
	if cfg.PageNumbers.Format != "{page}/{pages}" {
		t.Errorf("Format = %q", cfg.PageNumbers.Format)
	}
	if cfg.PreserveStructure {
		t.Error("PRESERVE_DIRECTORY_STRUCTURE=false not honored")
	}
	if cfg.Metadata.Title != "Handbook" {
		t.Errorf("Metadata.Title = %q", cfg.Metadata.Title)
	}
}

func TestLoadConfig_DeprecatedWarnings(t *testing.T) {
	t.Setenv("PDF_FONT_FAMILY", "Comic Sans")
	t.Setenv("PDF_FONT_SIZE", "14pt")

	_, warnings, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w.Message, "deprecated") {
			t.Errorf("warning %q does not mention deprecation", w.Message)
		}
	}
}

func TestLoadConfig_FormatTruncated(t *testing.T) {
	t.Setenv("PAGE_NUMBER_FORMAT", strings.Repeat("x", MaxPageNumberFormatLength+20))

	cfg, _, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(cfg.PageNumbers.Format) != MaxPageNumberFormatLength {
		t.Errorf("format length = %d, want %d",
			len(cfg.PageNumbers.Format), MaxPageNumberFormatLength)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	// Pre-set so t.Setenv restores the original value after godotenv
	// overwrites it.
	t.Setenv("PDF_PAGE_SIZE", "A4")

	path := filepath.Join(t.TempDir(), "custom.env")
	if err := os.WriteFile(path, []byte("PDF_PAGE_SIZE=A5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) error = %v", path, err)
	}
	if cfg.PageSize != "A5" {
		t.Errorf("PageSize = %q, want A5 from env file", cfg.PageSize)
	}
}

func TestLoadConfig_MissingNamedEnvFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	if err == nil {
		t.Error("LoadConfig() with missing named env file succeeded, want error")
	}
}

func TestLoadConfigInto_BaseKept(t *testing.T) {
	t.Setenv("PDF_PAGE_SIZE", "")
	os.Unsetenv("PDF_PAGE_SIZE")

	base := DefaultConfig()
	base.PageSize = "Legal"
	base.DefaultOutputDir = "build"

	cfg, _, err := LoadConfigInto(base, "")
	if err != nil {
		t.Fatalf("LoadConfigInto() error = %v", err)
	}
	if cfg.PageSize != "Legal" {
		t.Errorf("PageSize = %q, want base value Legal", cfg.PageSize)
	}
	if cfg.DefaultOutputDir != "build" {
		t.Errorf("DefaultOutputDir = %q, want base value build", cfg.DefaultOutputDir)
	}
}
