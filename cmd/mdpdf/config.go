package main

import (
	"errors"
	"fmt"
	"os"

	mdpdf "github.com/mdpdf/mdpdf"
	"github.com/mdpdf/mdpdf/internal/hints"
	"github.com/mdpdf/mdpdf/internal/yamlutil"
)

// Sentinel errors for config file handling.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("config file parse error")
)

// fileConfig is the YAML config file schema. Every field is optional;
// unset fields keep their defaults. Environment variables and flags
// override file values.
type fileConfig struct {
	PageSize     string `yaml:"page_size"`
	MarginTop    string `yaml:"margin_top"`
	MarginBottom string `yaml:"margin_bottom"`
	MarginLeft   string `yaml:"margin_left"`
	MarginRight  string `yaml:"margin_right"`

	OutputDir         string `yaml:"output_dir"`
	PreserveStructure *bool  `yaml:"preserve_structure"`

	PageNumbers struct {
		Enabled  *bool  `yaml:"enabled"`
		Position string `yaml:"position"`
		Format   string `yaml:"format"`
	} `yaml:"page_numbers"`

	Metadata struct {
		Title    string `yaml:"title"`
		Author   string `yaml:"author"`
		Subject  string `yaml:"subject"`
		Keywords string `yaml:"keywords"`
	} `yaml:"metadata"`

	Theme      string `yaml:"theme"`
	CSS        string `yaml:"css"`
	Timeout    string `yaml:"timeout"`
	DateFormat string `yaml:"date_format"`
}

// loadFileConfig reads and parses a YAML config file. Unknown fields are
// rejected so typos surface instead of silently doing nothing.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s%s", ErrConfigNotFound, path,
				hints.ForConfigNotFound([]string{path}))
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	fc := &fileConfig{}
	if err := yamlutil.DecodeStrict(data, fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return fc, nil
}

// apply overlays the file's set fields onto cfg.
func (fc *fileConfig) apply(cfg *mdpdf.Config) {
	setString(&cfg.PageSize, fc.PageSize)
	setString(&cfg.MarginTop, fc.MarginTop)
	setString(&cfg.MarginBottom, fc.MarginBottom)
	setString(&cfg.MarginLeft, fc.MarginLeft)
	setString(&cfg.MarginRight, fc.MarginRight)
	setString(&cfg.DefaultOutputDir, fc.OutputDir)
	if fc.PreserveStructure != nil {
		cfg.PreserveStructure = *fc.PreserveStructure
	}
	if fc.PageNumbers.Enabled != nil {
		cfg.PageNumbers.Enabled = *fc.PageNumbers.Enabled
	}
	setString(&cfg.PageNumbers.Position, fc.PageNumbers.Position)
	setString(&cfg.PageNumbers.Format, fc.PageNumbers.Format)
	setString(&cfg.Metadata.Title, fc.Metadata.Title)
	setString(&cfg.Metadata.Author, fc.Metadata.Author)
	setString(&cfg.Metadata.Subject, fc.Metadata.Subject)
	setString(&cfg.Metadata.Keywords, fc.Metadata.Keywords)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
