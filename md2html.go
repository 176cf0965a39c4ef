package mdpdf

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// fragmentConverter converts one Markdown source file to an HTML fragment.
// A fresh instance is built per source file so the image resolver is bound
// to that file's directory and no parser state leaks between files.
type fragmentConverter struct {
	md       goldmark.Markdown
	resolver *imagePathResolver
}

// newFragmentConverter wires the Markdown engine with tables, fenced-code
// highlighting, hard line breaks, and the image resolver for the given
// source file.
func newFragmentConverter(sourcePath string) *fragmentConverter {
	resolver := newImagePathResolver(sourcePath)
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
			),
		),
		goldmark.WithParserOptions(
			// Heading ids are injected later by the anchor pipeline, which
			// deduplicates across merged documents; goldmark's own auto ids
			// would collide there.
			parser.WithASTTransformers(
				util.Prioritized(resolver, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),
			html.WithUnsafe(), // Pass raw HTML through, like the source format allows
		),
	)
	return &fragmentConverter{md: md, resolver: resolver}
}

// ToFragment converts Markdown content to an HTML fragment. A missing image
// reference surfaces as ErrInvalidMarkdown. Supports context cancellation
// via goroutine + select since goldmark doesn't take a context.
func (c *fragmentConverter) ToFragment(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		fragment string
		err      error
	}

	done := make(chan result, 1)
	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrInvalidMarkdown, err)}
			return
		}
		if err := c.resolver.Err(); err != nil {
			done <- result{err: err}
			return
		}
		done <- result{fragment: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.fragment, r.err
	}
}
