package mdpdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// applyMetadata writes document metadata into the PDF info dictionary.
// Chrome's print-to-PDF cannot set metadata, so this is a post-pass over
// the rendered bytes. Empty metadata returns the input unchanged.
func applyMetadata(pdf []byte, meta Metadata) ([]byte, error) {
	props := map[string]string{}
	if meta.Title != "" {
		props["Title"] = meta.Title
	}
	if meta.Author != "" {
		props["Author"] = meta.Author
	}
	if meta.Subject != "" {
		props["Subject"] = meta.Subject
	}
	keywords := meta.KeywordList()

	if len(props) == 0 && len(keywords) == 0 {
		return pdf, nil
	}

	conf := model.NewDefaultConfiguration()

	if len(props) > 0 {
		var buf bytes.Buffer
		if err := api.AddProperties(bytes.NewReader(pdf), &buf, props, conf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPDFMetadata, err)
		}
		pdf = buf.Bytes()
	}

	if len(keywords) > 0 {
		var buf bytes.Buffer
		if err := api.AddKeywords(bytes.NewReader(pdf), &buf, keywords, conf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPDFMetadata, err)
		}
		pdf = buf.Bytes()
	}

	return pdf, nil
}
