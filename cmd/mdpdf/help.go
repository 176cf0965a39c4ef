package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpdf <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to styled PDF documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or directory for batch conversion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>           Output PDF file (single input or --merge)")
	fmt.Fprintln(w, "  -d, --output-dir <dir>        Output directory for batch conversion")
	fmt.Fprintln(w, "      --create-output-dir <s>   Create an output subdirectory (name, or \"auto\")")
	fmt.Fprintln(w, "      --no-preserve-structure   Flatten output instead of mirroring the tree")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "  -t, --theme <name>            Theme: github, minimal, academic, dark, modern")
	fmt.Fprintln(w, "      --css <file>              Custom CSS file (mutually exclusive with --theme)")
	fmt.Fprintln(w, "      --page-numbers            Enable page numbers")
	fmt.Fprintln(w, "      --no-page-numbers         Disable page numbers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -m, --merge                   Merge all inputs into one PDF (directory only)")
	fmt.Fprintln(w, "      --toc                     Prepend a table of contents")
	fmt.Fprintln(w, "      --title-page              Prepend a title page")
	fmt.Fprintln(w, "      --title <s>               PDF title (default: input base name)")
	fmt.Fprintln(w, "      --author <s>              PDF author")
	fmt.Fprintln(w, "      --subject <s>             PDF subject")
	fmt.Fprintln(w, "      --keywords <s>            PDF keywords, comma-separated")
	fmt.Fprintln(w, "      --date-format <s>         Title page date format")
	fmt.Fprintln(w, "                                Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                                Presets: iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <file>           YAML config file")
	fmt.Fprintln(w, "      --env-file <file>         .env file (default: ./.env when present)")
	fmt.Fprintln(w, "      --timeout <dur>           PDF generation timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show per-file progress")
	fmt.Fprintln(w, "  -h, --help                    Show this help")
	fmt.Fprintln(w, "      --version                 Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 success, 1 partial success or usage error, 2 failure.")
}
