package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(LocalConfig{Dir: dir, BaseURL: "/uploads"})
	ctx := context.Background()

	ref, err := s.Save(ctx, ".jpg", []byte("poster-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	// Bytes must be retrievable from disk under the reference's file name
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	assert.NoError(t, err)
	assert.Equal(t, []byte("poster-bytes"), data)

	err = s.Delete(ctx, ref)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filepath.Base(ref)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewLocalStorage(LocalConfig{Dir: dir, BaseURL: "/uploads"})

	_, err := s.Save(context.Background(), ".png", []byte{1, 2, 3})
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_SaveGeneratesUniqueNames(t *testing.T) {
	s := NewLocalStorage(LocalConfig{Dir: t.TempDir(), BaseURL: "/uploads"})
	ctx := context.Background()

	ref1, err := s.Save(ctx, ".jpg", []byte("a"))
	assert.NoError(t, err)
	ref2, err := s.Save(ctx, ".jpg", []byte("a"))
	assert.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestLocalStorage_DeleteMissingFile(t *testing.T) {
	s := NewLocalStorage(LocalConfig{Dir: t.TempDir(), BaseURL: "/uploads"})

	err := s.Delete(context.Background(), "/uploads/does-not-exist.jpg")
	assert.NoError(t, err)
}

func TestLocalStorage_DeleteInvalidReference(t *testing.T) {
	s := NewLocalStorage(LocalConfig{Dir: t.TempDir(), BaseURL: "/uploads"})

	err := s.Delete(context.Background(), "/uploads/")
	assert.Error(t, err)
}
