package mdpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mdpdf/mdpdf/internal/fileutil"
)

// PDFRenderer abstracts HTML to PDF rendering to allow different backends
// and to enable testing without a browser.
type PDFRenderer interface {
	// RenderPDF renders htmlContent to a PDF file at outputPath. Relative
	// resources inside the document resolve against basePath. Document
	// metadata is written into the PDF info dictionary.
	RenderPDF(ctx context.Context, htmlContent, basePath string, meta Metadata, outputPath string) error
	Close() error
}

// Compile-time interface check
var _ PDFRenderer = (*rodRenderer)(nil)

// rodRenderer implements PDFRenderer using go-rod with headless Chrome.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderPDF renders htmlContent in headless Chrome and writes the result,
// with metadata applied, to outputPath.
func (r *rodRenderer) RenderPDF(ctx context.Context, htmlContent, basePath string, meta Metadata, outputPath string) error {
	pdfBuf, err := r.renderBytes(ctx, htmlContent, basePath)
	if err != nil {
		return err
	}

	pdfBuf, err = applyMetadata(pdfBuf, meta)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("%w: creating output directory: %v", ErrPDFGeneration, err)
		}
	}
	if err := os.WriteFile(outputPath, pdfBuf, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPDFGeneration, outputPath, err)
	}
	return nil
}

// renderBytes loads the HTML in a fresh page and prints it to PDF bytes.
func (r *rodRenderer) renderBytes(ctx context.Context, htmlContent, basePath string) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(injectBase(htmlContent, basePath), "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// PreferCSSPageSize lets the document's @page rule control page
	// dimensions and margins instead of Chrome's print defaults.
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// injectBase inserts a <base> element so relative resources resolve
// against basePath. The temp file Chrome loads lives in the system temp
// directory, so without this the document's directory is lost.
func injectBase(htmlContent, basePath string) string {
	if basePath == "" {
		return htmlContent
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	base := fmt.Sprintf(`<base href="file://%s">`, basePath)
	if i := strings.Index(htmlContent, "</head>"); i >= 0 {
		return htmlContent[:i] + base + htmlContent[i:]
	}
	return base + htmlContent
}
