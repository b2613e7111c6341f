package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rtakeda/flowdoc/pkg/domain"
)

// Store implements ports.DocumentStore on the local filesystem.
type Store struct{}

// New creates a new filesystem-backed document store.
func New() *Store {
	return &Store{}
}

// ReadDocument returns the full text content of the document at path.
// A missing file surfaces as domain.ErrDocumentNotFound.
func (s *Store) ReadDocument(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrDocumentNotFound)
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// WriteDocument overwrites the document at path atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination, so readers never observe a partial document.
func (s *Store) WriteDocument(ctx context.Context, path string, text string) error {
	dir := filepath.Dir(path)

	// Same directory as the destination to ensure we stay on the same
	// filesystem (required for atomic rename).
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()    // Ensure closed
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.WriteString(text); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists; remove it first. The
	// delete+rename window is acceptable for CLI usage compared to a
	// write causing a partial file.
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing document for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to document: %w", err)
	}

	return nil
}
