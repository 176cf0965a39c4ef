package mdpdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFragmentConverter_ToFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:  "heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1>Hello World</h1>",
			},
		},
		{
			name:  "hard line breaks",
			input: "Line one\nLine two",
			wantContains: []string{
				"<br",
			},
		},
		{
			name:  "table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<th>A</th>",
				"<td>1</td>",
			},
		},
		{
			name:  "fenced code highlighted inline",
			input: "```go\nfunc main() {}\n```",
			wantContains: []string{
				"<pre",
				"style=",
				"func",
			},
		},
		{
			name:  "raw html passes through",
			input: "<div class=\"note\">kept</div>",
			wantContains: []string{
				`<div class="note">kept</div>`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newFragmentConverter("doc.md")
			got, err := conv.ToFragment(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToFragment() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ToFragment() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestFragmentConverter_NoDocumentShell(t *testing.T) {
	t.Parallel()

	conv := newFragmentConverter("doc.md")
	got, err := conv.ToFragment(context.Background(), "# Title")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
		t.Errorf("ToFragment() produced a full document instead of a fragment:\n%s", got)
	}
}

func TestFragmentConverter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := newFragmentConverter("doc.md")
	_, err := conv.ToFragment(ctx, "# Title")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToFragment() error = %v, want context.Canceled", err)
	}
}

func TestFragmentConverter_MissingImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "doc.md")

	conv := newFragmentConverter(src)
	_, err := conv.ToFragment(context.Background(), "![logo](img/logo.png)")
	if !errors.Is(err, ErrInvalidMarkdown) {
		t.Fatalf("ToFragment() error = %v, want ErrInvalidMarkdown", err)
	}
	if !strings.Contains(err.Error(), "img/logo.png") {
		t.Errorf("error %q does not name the missing reference", err)
	}
	if !strings.Contains(err.Error(), src) {
		t.Errorf("error %q does not name the source file", err)
	}
}

func TestFragmentConverter_ResolvesRelativeImage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	imgDir := filepath.Join(dir, "img")
	if err := os.MkdirAll(imgDir, 0o750); err != nil {
		t.Fatal(err)
	}
	imgPath := filepath.Join(imgDir, "logo.png")
	if err := os.WriteFile(imgPath, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}

	conv := newFragmentConverter(filepath.Join(dir, "doc.md"))
	got, err := conv.ToFragment(context.Background(), "![logo](img/logo.png)")
	if err != nil {
		t.Fatalf("ToFragment() error = %v", err)
	}
	if !strings.Contains(got, imgPath) {
		t.Errorf("ToFragment() did not rewrite the image src to %q:\n%s", imgPath, got)
	}
}
