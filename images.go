package mdpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// imagePathResolver rewrites image destinations in the parsed document tree
// so relative paths resolve against the source file's own directory, and
// verifies the targets exist. One resolver is built per source file.
//
// Goldmark transformers cannot return errors, so the first failure is
// recorded and surfaced by the fragment converter after Convert returns.
type imagePathResolver struct {
	sourcePath string
	sourceDir  string
	err        error
}

var _ parser.ASTTransformer = (*imagePathResolver)(nil)

func newImagePathResolver(sourcePath string) *imagePathResolver {
	return &imagePathResolver{
		sourcePath: sourcePath,
		sourceDir:  filepath.Dir(sourcePath),
	}
}

// Transform walks the tree rewriting every image destination.
func (r *imagePathResolver) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || r.err != nil {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		resolved, err := r.resolve(string(img.Destination))
		if err != nil {
			r.err = err
			return ast.WalkStop, nil
		}
		img.Destination = []byte(resolved)
		return ast.WalkContinue, nil
	})
}

// Err returns the first resolution failure, or nil.
func (r *imagePathResolver) Err() error {
	return r.err
}

// resolve maps one image reference to a verified absolute path. Remote and
// data references pass through untouched; the rendering engine fetches those
// itself.
func (r *imagePathResolver) resolve(ref string) (string, error) {
	if ref == "" || isRemoteRef(ref) {
		return ref, nil
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Clean(filepath.Join(r.sourceDir, path))
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: image not found: %s (referenced in %s)",
			ErrInvalidMarkdown, ref, r.sourcePath)
	}
	return path, nil
}

// isRemoteRef reports whether the reference is a URL rather than a local path.
func isRemoteRef(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "file://") ||
		strings.HasPrefix(ref, "data:") ||
		strings.HasPrefix(ref, "//")
}
