package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage serves attachment files from a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the base directory exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./attaches"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create attach directory: %w", err)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve attach directory: %w", err)
	}
	return &LocalStorage{baseDir: abs}, nil
}

// Open returns a read-only handle for the stored file.
func (s *LocalStorage) Open(relPath string) (*os.File, error) {
	path, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attach file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) resolve(relPath string) (string, error) {
	path := filepath.Join(s.baseDir, filepath.Clean("/"+relPath))
	if path != s.baseDir && !strings.HasPrefix(path, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes storage root", relPath)
	}
	return path, nil
}
