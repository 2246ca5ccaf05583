package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes files under a single directory which the HTTP layer
// serves read-only under publicPath.
type LocalStorage struct {
	dir        string
	publicPath string
}

func NewLocalStorage(dir, publicPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:        dir,
		publicPath: publicPath,
	}, nil
}

func (s *LocalStorage) Save(key string, src io.Reader) (string, error) {
	path := filepath.Join(s.dir, key)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

func (s *LocalStorage) Delete(key string) error {
	return os.Remove(filepath.Join(s.dir, key))
}

func (s *LocalStorage) PublicURL(key string) string {
	return s.publicPath + "/" + key
}
