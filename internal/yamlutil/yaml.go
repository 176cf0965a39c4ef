// Package yamlutil decodes YAML configuration documents with guardrails
// suited to small hand-written config files.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps a config document. Anything larger than this is not
// a config file somebody wrote by hand.
const MaxDocumentSize = 256 << 10

var (
	ErrNoTarget = errors.New("yamlutil: nil decode target")
	ErrTooLarge = errors.New("yamlutil: document too large")
)

// DecodeStrict parses data into dst, rejecting unknown fields so config
// typos surface instead of silently doing nothing. An empty or
// whitespace-only document is a valid no-op: dst keeps its values.
func DecodeStrict(data []byte, dst any) error {
	if dst == nil {
		return ErrNoTarget
	}
	if len(data) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrTooLarge, len(data), MaxDocumentSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := yaml.UnmarshalWithOptions(data, dst, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
