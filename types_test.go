package mdpdf

import (
	"errors"
	"reflect"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown page size",
			mutate:  func(c *Config) { c.PageSize = "Tabloid" },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "lowercase page size rejected",
			mutate:  func(c *Config) { c.PageSize = "a4" },
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "margin without unit",
			mutate:  func(c *Config) { c.MarginTop = "2" },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "margin that is only a unit",
			mutate:  func(c *Config) { c.MarginLeft = "cm" },
			wantErr: ErrInvalidMargin,
		},
		{
			name:    "unknown margin unit",
			mutate:  func(c *Config) { c.MarginRight = "2em" },
			wantErr: ErrInvalidMargin,
		},
		{
			name: "bad page number position when enabled",
			mutate: func(c *Config) {
				c.PageNumbers.Enabled = true
				c.PageNumbers.Position = "bottom"
			},
			wantErr: ErrInvalidPageNumberPosition,
		},
		{
			name: "bad position ignored when disabled",
			mutate: func(c *Config) {
				c.PageNumbers.Enabled = false
				c.PageNumbers.Position = "bottom"
			},
		},
		{
			name:   "all margin units accepted",
			mutate: func(c *Config) { c.MarginTop = "10px"; c.MarginBottom = "12pt"; c.MarginLeft = "1in"; c.MarginRight = "5mm" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMetadataKeywordList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		keywords string
		want     []string
	}{
		{name: "empty", keywords: "", want: nil},
		{name: "whitespace only", keywords: "  ", want: nil},
		{name: "single", keywords: "go", want: []string{"go"}},
		{name: "trimmed", keywords: " go , pdf ,markdown", want: []string{"go", "pdf", "markdown"}},
		{name: "empty segments dropped", keywords: "go,,pdf,", want: []string{"go", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Metadata{Keywords: tt.keywords}.KeywordList()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeywordList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
