package mdpdf

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mdpdf/mdpdf/internal/fileutil"
)

// markdownExtensions are the file extensions discovered by ConvertTree.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// ConvertTree walks inputDir recursively, converts every markdown file it
// finds, and writes the PDFs under outputDir. With preserve set, the input
// directory structure is mirrored; otherwise output is flattened and name
// collisions get a numeric suffix. Files are processed strictly in order of
// their relative path. A failed file is recorded and the walk continues;
// the error return covers only discovery itself. A directory with no
// markdown files yields an empty result list and a warning, not an error.
func (c *Converter) ConvertTree(ctx context.Context, inputDir, outputDir string, preserve bool, opts Options) ([]Result, error) {
	sources, err := DiscoverMarkdown(inputDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		c.warn(Warning{Message: fmt.Sprintf("no markdown files under %s", inputDir)})
		return nil, nil
	}

	outputs := c.mapOutputs(sources, outputDir, preserve)

	results := make([]Result, 0, len(sources))
	for i, rel := range sources {
		src := filepath.Join(inputDir, rel)
		dst := outputs[i]

		convErr := c.ConvertFile(ctx, src, dst, opts)
		results = append(results, Result{
			InputPath:  src,
			OutputPath: dst,
			Success:    convErr == nil && fileutil.HasPDFSignature(dst),
			Err:        convErr,
		})

		if ctx.Err() != nil {
			return results, ctx.Err()
		}
	}
	return results, nil
}

// DiscoverMarkdown returns the relative paths of all .md and .markdown
// files under dir, sorted for deterministic processing order.
func DiscoverMarkdown(dir string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !markdownExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %v", ErrConversionFailed, dir, err)
	}
	sort.Strings(sources)
	return sources, nil
}

// mapOutputs computes the destination path for each relative source path.
// Flattened outputs that would collide get a -2, -3… suffix and a warning.
func (c *Converter) mapOutputs(sources []string, outputDir string, preserve bool) []string {
	outputs := make([]string, len(sources))
	taken := make(map[string]struct{}, len(sources))
	for i, rel := range sources {
		name := baseName(rel) + ".pdf"

		var dst string
		if preserve {
			dst = filepath.Join(outputDir, filepath.Dir(rel), name)
		} else {
			dst = filepath.Join(outputDir, name)
		}

		if _, ok := taken[dst]; ok {
			stem := strings.TrimSuffix(dst, ".pdf")
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s-%d.pdf", stem, n)
				if _, ok := taken[candidate]; !ok {
					c.warn(Warning{
						Source:  rel,
						Message: fmt.Sprintf("output name collision, writing %s", filepath.Base(candidate)),
					})
					dst = candidate
					break
				}
			}
		}
		taken[dst] = struct{}{}
		outputs[i] = dst
	}
	return outputs
}
