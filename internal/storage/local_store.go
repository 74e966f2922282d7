package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore persists uploaded binaries and returns a stable retrievable path.
type FileStore interface {
	Save(ctx context.Context, category, name string, r io.Reader) (string, error)
}

// LocalStore writes uploads under a root directory on local disk.
type LocalStore struct {
	root string
}

// Ensure LocalStore implements FileStore
var _ FileStore = (*LocalStore)(nil)

// NewLocalStore creates a file store rooted at dir.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

// Save writes the blob to <root>/<category>/<name>, replacing any previous
// file of the same name, and returns the stored path.
func (s *LocalStore) Save(ctx context.Context, category, name string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Do not leave a truncated file behind.
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return path, nil
}
