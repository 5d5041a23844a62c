package objectstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avc-dev/brevly/internal/config"
)

// FileStorage сохраняет объекты в локальную директорию, которую отдаёт сам сервис по /files/
type FileStorage struct {
	root    string
	baseURL config.URLPrefix
}

// NewFileStorage создаёт директорию root при необходимости
func NewFileStorage(root string, baseURL config.URLPrefix) (*FileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStorage{
		root:    root,
		baseURL: baseURL,
	}, nil
}

// Root директория хранилища
func (fs *FileStorage) Root() string {
	return fs.root
}

// Upload записывает файл атомарно через временный файл и rename
func (fs *FileStorage) Upload(_ context.Context, key string, body []byte, _ string, _ string) (string, error) {
	path, err := fs.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move file into place: %w", err)
	}

	return fs.baseURL.Join(strings.Split(key, "/")...), nil
}

// resolve не позволяет ключу выйти за пределы root
func (fs *FileStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object key: %q", key)
	}

	return filepath.Join(fs.root, cleaned), nil
}
