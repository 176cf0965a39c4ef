package mdpdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for the persisted configuration surface.
const (
	envPageSize          = "PDF_PAGE_SIZE"
	envMarginTop         = "PDF_MARGIN_TOP"
	envMarginBottom      = "PDF_MARGIN_BOTTOM"
	envMarginLeft        = "PDF_MARGIN_LEFT"
	envMarginRight       = "PDF_MARGIN_RIGHT"
	envDefaultOutputDir  = "DEFAULT_OUTPUT_DIR"
	envPreserveStructure = "PRESERVE_DIRECTORY_STRUCTURE"
	envPageNumbers       = "ENABLE_PAGE_NUMBERS"
	envPageNumberPos     = "PAGE_NUMBER_POSITION"
	envPageNumberFormat  = "PAGE_NUMBER_FORMAT"
	envTitle             = "PDF_TITLE"
	envAuthor            = "PDF_AUTHOR"
	envSubject           = "PDF_SUBJECT"
	envKeywords          = "PDF_KEYWORDS"
)

// deprecatedEnvVars are ignored in favor of theme/CSS-driven styling but
// still produce a warning so users know why their fonts stopped applying.
var deprecatedEnvVars = []string{
	"PDF_FONT_FAMILY",
	"PDF_FONT_SIZE",
	"PDF_CODE_FONT",
}

// LoadConfig reads configuration from environment variables, optionally
// loading a .env-style file first. envFile == "" loads ".env" from the
// current directory when present; a named file that is missing is an error.
//
// Returned warnings cover deprecated settings; they are non-fatal.
func LoadConfig(envFile string) (Config, []Warning, error) {
	return LoadConfigInto(DefaultConfig(), envFile)
}

// LoadConfigInto overlays environment settings onto base, letting callers
// stack the environment over defaults from another source (a config file).
func LoadConfigInto(base Config, envFile string) (Config, []Warning, error) {
	if envFile != "" {
		if err := godotenv.Overload(envFile); err != nil {
			return Config{}, nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	} else {
		// Default .env is optional.
		_ = godotenv.Load()
	}

	var warnings []Warning
	for _, name := range deprecatedEnvVars {
		if os.Getenv(name) != "" {
			warnings = append(warnings, Warning{
				Message: fmt.Sprintf("deprecated: %s is ignored, use a theme or custom CSS instead", name),
			})
		}
	}

	cfg := base
	setIfPresent(&cfg.PageSize, envPageSize)
	setIfPresent(&cfg.MarginTop, envMarginTop)
	setIfPresent(&cfg.MarginBottom, envMarginBottom)
	setIfPresent(&cfg.MarginLeft, envMarginLeft)
	setIfPresent(&cfg.MarginRight, envMarginRight)
	setIfPresent(&cfg.DefaultOutputDir, envDefaultOutputDir)

	if v := os.Getenv(envPreserveStructure); v != "" {
		cfg.PreserveStructure = strings.EqualFold(v, "true")
	}
	if v := os.Getenv(envPageNumbers); v != "" {
		cfg.PageNumbers.Enabled = strings.EqualFold(v, "true")
	}
	setIfPresent(&cfg.PageNumbers.Position, envPageNumberPos)
	setIfPresent(&cfg.PageNumbers.Format, envPageNumberFormat)

	// Long format templates are truncated, not rejected.
	if len(cfg.PageNumbers.Format) > MaxPageNumberFormatLength {
		cfg.PageNumbers.Format = cfg.PageNumbers.Format[:MaxPageNumberFormatLength]
	}

	setIfPresent(&cfg.Metadata.Title, envTitle)
	setIfPresent(&cfg.Metadata.Author, envAuthor)
	setIfPresent(&cfg.Metadata.Subject, envSubject)
	setIfPresent(&cfg.Metadata.Keywords, envKeywords)

	return cfg, warnings, nil
}

func setIfPresent(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
