package mdpdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors, scoped to the file or merge in progress.
	ErrInvalidMarkdown = errors.New("invalid markdown")
	ErrNoSources       = errors.New("merge requires at least one source file")

	// Rendering errors. Wrapped with the source path for context.
	ErrConversionFailed = errors.New("conversion failed")

	// Configuration validation errors. Surfaced before any conversion attempt.
	ErrInvalidPageSize           = errors.New("invalid page size")
	ErrInvalidMargin             = errors.New("invalid margin")
	ErrInvalidPageNumberPosition = errors.New("invalid page number position")

	// Style selection errors.
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrCSSNotFound   = errors.New("CSS file not found")
	ErrStyleConflict = errors.New("cannot use a theme and a custom CSS file together")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFMetadata    = errors.New("failed to set PDF metadata")
)
