package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage stores uploaded files on the local filesystem and serves them
// under a static URL prefix.
type LocalStorage struct {
	uploadDir string
	urlPrefix string
}

// NewLocalStorage creates the upload directory if needed
func NewLocalStorage(uploadDir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{uploadDir: uploadDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

// Store writes data under a random name keeping the original extension and
// returns the public URL path.
func (s *LocalStorage) Store(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.New().String() + ext
	path := filepath.Join(s.uploadDir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.urlPrefix + "/" + name, nil
}

// Dir returns the directory static file serving should mount
func (s *LocalStorage) Dir() string {
	return s.uploadDir
}
