package main

import (
	"errors"

	mdpdf "github.com/mdpdf/mdpdf"
)

// Exit codes for the mdpdf CLI.
const (
	ExitSuccess = 0 // every requested conversion succeeded
	ExitPartial = 1 // partial success, or a recoverable usage error
	ExitFailure = 2 // total failure, or a configuration validation error
)

// ErrUsage marks recoverable command-line mistakes (bad flag combinations,
// wrong input kind). Distinct from configuration validation, which exits 2.
var ErrUsage = errors.New("usage error")

// exitCodeFor maps an error to an exit code.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Recoverable usage errors (exit 1)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, mdpdf.ErrStyleConflict) ||
		errors.Is(err, mdpdf.ErrUnknownTheme) ||
		errors.Is(err, mdpdf.ErrCSSNotFound) {
		return ExitPartial
	}

	// Everything else, configuration validation included, is terminal.
	return ExitFailure
}
