// Package filestore provides a file-based implementation of UsageSource.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/tempconv/internal/domain"
)

// Ensure Store implements domain.UsageSource.
var _ domain.UsageSource = (*Store)(nil)

// Store reads usage text from a file.
type Store struct {
	path string
}

// New creates a Store for path. A relative path is resolved against dir.
func New(dir, path string) *Store {
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return &Store{path: path}
}

// Load returns the file contents verbatim.
func (s *Store) Load() (string, error) {
	if s.path == "" {
		return "", fmt.Errorf("no usage file configured: %w", os.ErrNotExist)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read usage file: %w", err)
	}
	return string(data), nil
}
