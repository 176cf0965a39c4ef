package mdpdf

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdpdf/mdpdf/internal/fileutil"
)

// pageBreakDiv forces a page boundary between merged documents.
const pageBreakDiv = `<div style="page-break-after: always;"></div>`

// Converter turns markdown files into styled PDF documents. Construct with
// NewConverter; a zero Converter is not usable. Safe for sequential reuse
// across many conversions; the browser connection is established lazily on
// first render and held until Close.
type Converter struct {
	cfg        Config
	css        string // assembled @page + style CSS, built once
	timeout    time.Duration
	themeName  string
	cssPath    string
	warn       WarningSink
	dateLayout string
	now        func() time.Time
	renderer   PDFRenderer
}

// NewConverter validates cfg, assembles the document CSS, and returns a
// ready Converter. Style selection (theme vs custom CSS) is resolved here,
// before any conversion is attempted.
func NewConverter(cfg Config, opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:        cfg,
		timeout:    defaultTimeout,
		dateLayout: defaultDateLayout,
		now:        time.Now,
		warn:       func(Warning) {},
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	page, err := pageCSS(cfg)
	if err != nil {
		return nil, err
	}
	style, err := resolveStyleCSS(c.themeName, c.cssPath)
	if err != nil {
		return nil, err
	}
	c.css = page + "\n" + style

	if c.renderer == nil {
		c.renderer = newRodRenderer(c.timeout)
	}
	return c, nil
}

// Close releases renderer resources. The Converter must not be used after.
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

// ConvertFile converts a single markdown file to a PDF at dst.
func (c *Converter) ConvertFile(ctx context.Context, src, dst string, opts Options) error {
	fragment, err := c.fileToFragment(ctx, src)
	if err != nil {
		return err
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConversionFailed, src, err)
	}

	meta := c.deriveMetadata(opts, baseName(src))
	doc := c.composeDocument(fragment, opts, meta, src)

	if err := c.renderer.RenderPDF(ctx, doc, filepath.Dir(absSrc), meta, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConversionFailed, src, err)
	}
	return nil
}

// ConvertMerge converts multiple markdown files into one PDF at dst, in the
// given order, with a forced page break between consecutive documents.
func (c *Converter) ConvertMerge(ctx context.Context, sources []string, dst string, opts Options) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	fragments := make([]string, 0, len(sources))
	for _, src := range sources {
		fragment, err := c.fileToFragment(ctx, src)
		if err != nil {
			return err
		}
		fragments = append(fragments, fragment)
	}

	base, err := fileutil.CommonDir(sources)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	meta := c.deriveMetadata(opts, baseName(dst))
	doc := c.composeDocument(strings.Join(fragments, "\n"+pageBreakDiv+"\n"), opts, meta, dst)

	if err := c.renderer.RenderPDF(ctx, doc, base, meta, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrConversionFailed, dst, err)
	}
	return nil
}

// fileToFragment reads one markdown source and renders it to an HTML
// fragment with image references resolved against the source directory.
func (c *Converter) fileToFragment(ctx context.Context, src string) (string, error) {
	content, err := os.ReadFile(src) // #nosec G304 -- caller-supplied source path
	if err != nil {
		// An unreadable source is an input problem, not a rendering one.
		return "", fmt.Errorf("%w: reading %s: %v", ErrInvalidMarkdown, src, err)
	}
	fragment, err := newFragmentConverter(src).ToFragment(ctx, string(content))
	if err != nil {
		return "", err
	}
	return fragment, nil
}

// composeDocument assembles the full HTML shell around the body fragment,
// prepending the optional title page and table of contents.
func (c *Converter) composeDocument(body string, opts Options, meta Metadata, source string) string {
	headings := extractHeadings(body)
	body = applyAnchorIDs(body, headings)

	var front strings.Builder
	if opts.TitlePage {
		front.WriteString(titlePageHTML(meta, c.now(), c.dateLayout))
	}
	if opts.TOC {
		if len(headings) == 0 {
			c.warn(Warning{Source: source, Message: "no headings found for table of contents"})
		} else {
			front.WriteString(tocHTML(headings))
		}
	}

	title := meta.Title
	if title == "" {
		title = "Document"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	b.WriteString(sanitizeCSS(c.css))
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(front.String())
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// deriveMetadata merges per-conversion metadata over the configured
// defaults, falling back to defaultTitle when no title is set anywhere.
func (c *Converter) deriveMetadata(opts Options, defaultTitle string) Metadata {
	meta := c.cfg.Metadata
	if opts.Metadata.Title != "" {
		meta.Title = opts.Metadata.Title
	}
	if opts.Metadata.Author != "" {
		meta.Author = opts.Metadata.Author
	}
	if opts.Metadata.Subject != "" {
		meta.Subject = opts.Metadata.Subject
	}
	if opts.Metadata.Keywords != "" {
		meta.Keywords = opts.Metadata.Keywords
	}
	if meta.Title == "" {
		meta.Title = defaultTitle
	}
	return meta
}

// baseName strips the directory and extension from a path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
