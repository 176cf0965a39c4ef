// Package fileutil provides file and path utility functions.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// pdfSignature is the 4-byte magic at the start of every PDF file.
var pdfSignature = []byte("%PDF")

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "mdpdf-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// HasPDFSignature reports whether the file at path starts with the %PDF magic.
func HasPDFSignature(path string) bool {
	f, err := os.Open(path) // #nosec G304 -- probing a path we just wrote
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, len(pdfSignature))
	if _, err := f.Read(head); err != nil {
		return false
	}
	return bytes.Equal(head, pdfSignature)
}

// CommonDir returns the deepest directory shared by all paths. Each path is
// made absolute first; files contribute their parent directory.
func CommonDir(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", errors.New("no paths given")
	}

	common := ""
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", p, err)
		}
		dir := filepath.Dir(abs)
		if common == "" {
			common = dir
			continue
		}
		for !isPrefixDir(common, dir) {
			parent := filepath.Dir(common)
			if parent == common {
				break
			}
			common = parent
		}
	}
	return common, nil
}

// isPrefixDir reports whether dir is prefix itself or lives under it.
func isPrefixDir(prefix, dir string) bool {
	if prefix == dir {
		return true
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(prefix, sep) {
		prefix += sep
	}
	return strings.HasPrefix(dir+sep, prefix)
}
