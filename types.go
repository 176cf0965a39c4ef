package mdpdf

import (
	"fmt"
	"strings"
	"time"
)

// Recognized page sizes.
var validPageSizes = []string{"A4", "A3", "A5", "Letter", "Legal"}

// Recognized margin unit suffixes.
var validMarginUnits = []string{"cm", "mm", "in", "pt", "px"}

// Page number positions.
const (
	PositionLeft   = "left"
	PositionCenter = "center"
	PositionRight  = "right"
)

// MaxPageNumberFormatLength caps the page number format template.
// Longer templates are truncated, not rejected.
const MaxPageNumberFormatLength = 100

// PageNumbers configures the page-number margin box.
type PageNumbers struct {
	Enabled  bool
	Position string // "left", "center", "right"
	Format   string // template with {page} and {pages} placeholders
}

// Metadata holds PDF document metadata. All fields are optional; an empty
// title falls back to the source (or destination, for merges) base name.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string // comma-separated tags
}

// KeywordList splits the comma-separated keywords into trimmed tags.
// Empty segments are dropped.
func (m Metadata) KeywordList() []string {
	if strings.TrimSpace(m.Keywords) == "" {
		return nil
	}
	parts := strings.Split(m.Keywords, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Config holds settings for a conversion run. Immutable once a Converter
// is constructed from it; validated once before use.
type Config struct {
	PageSize     string
	MarginTop    string
	MarginBottom string
	MarginLeft   string
	MarginRight  string

	DefaultOutputDir  string
	PreserveStructure bool

	PageNumbers PageNumbers

	Metadata Metadata
}

// DefaultConfig returns the configuration used when no environment or file
// settings are present.
func DefaultConfig() Config {
	return Config{
		PageSize:          "A4",
		MarginTop:         "2cm",
		MarginBottom:      "2cm",
		MarginLeft:        "2cm",
		MarginRight:       "2cm",
		DefaultOutputDir:  "output",
		PreserveStructure: true,
		PageNumbers: PageNumbers{
			Enabled:  false,
			Position: PositionCenter,
			Format:   "Page {page} of {pages}",
		},
	}
}

// Validate checks that configuration values are usable.
// Validation runs eagerly, before any conversion attempt.
func (c Config) Validate() error {
	if !isValidPageSize(c.PageSize) {
		return fmt.Errorf("%w: %q (must be one of %s)",
			ErrInvalidPageSize, c.PageSize, strings.Join(validPageSizes, ", "))
	}

	margins := []struct {
		name  string
		value string
	}{
		{"margin-top", c.MarginTop},
		{"margin-bottom", c.MarginBottom},
		{"margin-left", c.MarginLeft},
		{"margin-right", c.MarginRight},
	}
	for _, m := range margins {
		if !hasMarginUnit(m.value) {
			return fmt.Errorf("%w: %s %q must include a unit (%s)",
				ErrInvalidMargin, m.name, m.value, strings.Join(validMarginUnits, ", "))
		}
	}

	if c.PageNumbers.Enabled {
		switch c.PageNumbers.Position {
		case PositionLeft, PositionCenter, PositionRight:
		default:
			return fmt.Errorf("%w: %q (must be left, center, or right)",
				ErrInvalidPageNumberPosition, c.PageNumbers.Position)
		}
	}

	return nil
}

func isValidPageSize(size string) bool {
	for _, s := range validPageSizes {
		if s == size {
			return true
		}
	}
	return false
}

func hasMarginUnit(value string) bool {
	for _, unit := range validMarginUnits {
		if strings.HasSuffix(value, unit) && len(value) > len(unit) {
			return true
		}
	}
	return false
}

// Options selects per-conversion features.
type Options struct {
	TOC       bool
	TitlePage bool
	Metadata  Metadata
}

// Warning is a structured diagnostic produced during conversion.
// The core never prints; warnings flow to the caller-supplied sink.
type Warning struct {
	Source  string // originating file, or "" for run-level warnings
	Message string
}

// WarningSink receives warnings as they are produced.
type WarningSink func(Warning)

// Result records the outcome of one file in a batch conversion.
// Success reflects whether the destination now exists with a valid
// PDF signature.
type Result struct {
	InputPath  string
	OutputPath string
	Success    bool
	Err        error
}

// Option configures a Converter.
type Option func(*Converter)

// defaultTimeout bounds a single PDF render.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.timeout = d
	}
}

// WithTheme selects a built-in theme by name.
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.themeName = name
	}
}

// WithCustomCSS selects an external CSS file instead of a built-in theme.
func WithCustomCSS(path string) Option {
	return func(c *Converter) {
		c.cssPath = path
	}
}

// WithWarningSink routes warnings to the given sink.
func WithWarningSink(sink WarningSink) Option {
	return func(c *Converter) {
		c.warn = sink
	}
}

// WithDateFormat overrides the title page date layout (a Go time layout).
func WithDateFormat(layout string) Option {
	return func(c *Converter) {
		c.dateLayout = layout
	}
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// WithRenderer injects a PDF renderer, for tests.
func WithRenderer(r PDFRenderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}
