// Package storage provides the local-disk visual store. Retrieval of
// stored visuals is served separately as static files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"carry-ads/internal/core/port"
)

// LocalStore keeps visuals as plain files in one directory. Names are
// generated on save, so lookups never accept path separators.
type LocalStore struct {
	dir string
}

var _ port.VisualStore = (*LocalStore)(nil)

// NewLocalStore creates the backing directory if needed and returns the
// store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create visual dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Exists reports whether a visual with the given name is present.
func (s *LocalStore) Exists(_ context.Context, name string) (bool, error) {
	if name == "" || name != filepath.Base(name) {
		return false, nil
	}
	_, err := os.Stat(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Save stores the content under a fresh uuid name with the given
// extension and returns that name.
func (s *LocalStore) Save(_ context.Context, r io.Reader, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	name := uuid.NewString()
	if ext != "" {
		name += "." + ext
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
