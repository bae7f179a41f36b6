package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
)

// LocalConfig configures the local filesystem backend.
type LocalConfig struct {
	Dir     string // Upload directory, created if absent
	BaseURL string // URL path prefix the directory is served under, e.g. "/uploads"
}

// LocalStorage writes posters to a local directory served as static files.
type LocalStorage struct {
	cfg LocalConfig
}

// NewLocalStorage creates a local storage backend from an explicit config.
func NewLocalStorage(cfg LocalConfig) *LocalStorage {
	return &LocalStorage{cfg: cfg}
}

// Save writes the bytes to `<dir>/<uuid><ext>` and returns the URL path
// `<baseURL>/<uuid><ext>`.
func (s *LocalStorage) Save(ctx context.Context, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	filePath := filepath.Join(s.cfg.Dir, name)

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	ref := path.Join(s.cfg.BaseURL, name)
	logger.Log.Infow("stored upload", "path", filePath, "ref", ref, "size", len(data))

	return ref, nil
}

// Delete removes the file behind a reference previously returned by Save.
// A missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, ref string) error {
	name := strings.TrimPrefix(ref, s.cfg.BaseURL)
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("invalid upload reference %q", ref)
	}

	err := os.Remove(filepath.Join(s.cfg.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
