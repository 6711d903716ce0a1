// Package fileutil provides file and path utility functions.
package fileutil

import (
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

// OutputFileMode is the permission of every artifact the build writes.
const OutputFileMode = 0o644

// MarkdownExtensions are the source extensions that get rendered.
// Comparison is case-insensitive.
var MarkdownExtensions = []string{".md", ".markdown"}

// HasMarkdownExt reports whether path ends in a Markdown extension.
func HasMarkdownExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range MarkdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// SiblingHTMLPath returns the intermediate HTML path for an output file:
// a trailing ".pdf" (any case) is replaced by ".html", otherwise ".html" is
// appended.
func SiblingHTMLPath(output string) string {
	if ext := filepath.Ext(output); strings.EqualFold(ext, ".pdf") {
		return strings.TrimSuffix(output, ext) + ".html"
	}
	return output + ".html"
}

// WriteFile writes data to path with OutputFileMode. The directory must
// exist; os.ErrNotExist and os.ErrPermission stay reachable.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, OutputFileMode); err != nil { // #nosec G306 -- output artifacts are meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "docs2pdf-*."+extension)
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

// IsFilePath returns true if the string looks like a file path rather than
// a name, i.e. it contains a path separator (/ or \).
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
