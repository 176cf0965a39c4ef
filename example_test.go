package mdpdf_test

import (
	"fmt"
	"strings"

	mdpdf "github.com/mdpdf/mdpdf"
)

// ExampleAvailableThemes lists the built-in themes.
func ExampleAvailableThemes() {
	fmt.Println(strings.Join(mdpdf.AvailableThemes(), ", "))
	// Output: github, minimal, academic, dark, modern
}

// ExampleConfig_Validate shows eager configuration validation.
func ExampleConfig_Validate() {
	cfg := mdpdf.DefaultConfig()
	cfg.MarginTop = "2" // missing unit

	if err := cfg.Validate(); err != nil {
		fmt.Println("invalid")
	}
	// Output: invalid
}

// ExampleMetadata_KeywordList shows keyword normalization.
func ExampleMetadata_KeywordList() {
	meta := mdpdf.Metadata{Keywords: " go , pdf ,, markdown "}
	fmt.Println(strings.Join(meta.KeywordList(), "|"))
	// Output: go|pdf|markdown
}
