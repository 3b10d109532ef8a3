// Package fs writes extraction results as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagemark/pagemark"
)

// URLToPath converts a page URL to a relative file path.
// Example: https://example.com/blog/post → blog/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash becomes index.md.
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// Writer writes extractions as markdown files under a base directory, keyed
// by the source URL's path.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteExtraction writes an extraction's content to disk. The content is the
// rendered output, which already carries its metadata header block.
func (w *Writer) WriteExtraction(ctx context.Context, extraction *pagemark.Extraction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := extraction.Validate(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(extraction.SourceURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, []byte(extraction.Content), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}
