// Package mdpdf converts Markdown documents to styled PDF files using
// headless Chrome.
//
// # Quick Start
//
// Create a converter from a configuration, convert a file, and close when
// done:
//
//	conv, err := mdpdf.NewConverter(mdpdf.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	err = conv.ConvertFile(ctx, "README.md", "README.pdf", mdpdf.Options{})
//
// # Conversion Pipeline
//
// Each conversion follows these stages:
//
//  1. Markdown to HTML via Goldmark (tables, syntax highlighting), with
//     relative image references resolved against the source file's
//     directory
//  2. Document assembly: headings stamped with deduplicated anchor ids,
//     optional title page and table of contents, theme or custom CSS, an
//     @page rule carrying page size, margins, and page numbers
//  3. PDF rendering via headless Chrome (go-rod)
//  4. Metadata (title, author, subject, keywords) written into the PDF
//
// # Configuration
//
// Config holds page geometry, page numbers, and metadata defaults; it can be
// loaded from the environment (and a .env file) with LoadConfig. Functional
// options select the theme, a custom stylesheet, the render timeout, and a
// sink for structured warnings:
//
//	conv, err := mdpdf.NewConverter(cfg,
//	    mdpdf.WithTheme("dark"),
//	    mdpdf.WithTimeout(2*time.Minute),
//	    mdpdf.WithWarningSink(func(w mdpdf.Warning) {
//	        log.Printf("%s: %s", w.Source, w.Message)
//	    }),
//	)
//
// # Merging and Batch Conversion
//
// ConvertMerge joins several markdown files into one PDF with a page break
// between documents. ConvertTree converts every markdown file under a
// directory, mirroring or flattening the directory structure, and reports a
// per-file Result.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to point at a pre-installed browser in containers and
// CI environments.
package mdpdf
