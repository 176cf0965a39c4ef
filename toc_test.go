package mdpdf

import (
	"strings"
	"testing"
	"time"
)

func TestTocHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		headings     []Heading
		wantContains []string
		wantEmpty    bool
	}{
		{
			name:      "no headings",
			headings:  nil,
			wantEmpty: true,
		},
		{
			name: "levels and order",
			headings: []Heading{
				{Text: "Intro", Level: 1, AnchorID: "intro"},
				{Text: "Setup", Level: 2, AnchorID: "setup"},
			},
			wantContains: []string{
				`<div class="toc">`,
				"<h1>Table of Contents</h1>",
				`<li class="toc-h1"><a href="#intro">Intro</a></li>`,
				`<li class="toc-h2"><a href="#setup">Setup</a></li>`,
			},
		},
		{
			name: "text escaped",
			headings: []Heading{
				{Text: `Tags <b> & "quotes"`, Level: 1, AnchorID: "tags"},
			},
			wantContains: []string{
				"Tags &lt;b&gt; &amp; &#34;quotes&#34;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tocHTML(tt.headings)
			if tt.wantEmpty {
				if got != "" {
					t.Errorf("tocHTML() = %q, want empty", got)
				}
				return
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("tocHTML() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestTocHTML_EntryOrder(t *testing.T) {
	t.Parallel()

	got := tocHTML([]Heading{
		{Text: "B", Level: 2, AnchorID: "b"},
		{Text: "A", Level: 1, AnchorID: "a"},
	})

	if strings.Index(got, `href="#b"`) > strings.Index(got, `href="#a"`) {
		t.Errorf("tocHTML() reordered entries:\n%s", got)
	}
}

func TestTitlePageHTML(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		meta         Metadata
		layout       string
		wantContains []string
		wantNot      []string
	}{
		{
			name: "full metadata",
			meta: Metadata{Title: "User Guide", Author: "Docs Team"},
			wantContains: []string{
				`<div class="title-page">`,
				"<h1>User Guide</h1>",
				`<p class="author">Docs Team</p>`,
				`<p class="date">March 05, 2026</p>`,
			},
		},
		{
			name:         "untitled fallback",
			meta:         Metadata{},
			wantContains: []string{"<h1>Untitled</h1>"},
			wantNot:      []string{`class="author"`},
		},
		{
			name:         "title escaped",
			meta:         Metadata{Title: "<Draft> & Co"},
			wantContains: []string{"&lt;Draft&gt; &amp; Co"},
		},
		{
			name:         "custom date layout",
			meta:         Metadata{Title: "X"},
			layout:       "2006-01-02",
			wantContains: []string{`<p class="date">2026-03-05</p>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := titlePageHTML(tt.meta, now, tt.layout)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("titlePageHTML() missing %q in:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("titlePageHTML() unexpectedly contains %q:\n%s", not, got)
				}
			}
		})
	}
}
