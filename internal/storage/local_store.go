package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps uploads as plain files in one directory, which the server
// also exposes read-only under /uploads.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(_ context.Context, filename string, reader io.Reader, _ int64) (string, error) {
	name := storedName(filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, reader); err != nil {
		return "", err
	}
	return name, nil
}

func (s *LocalStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	// Base strips any path the client smuggled into the name.
	return os.Open(filepath.Join(s.dir, filepath.Base(name)))
}

func (s *LocalStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
