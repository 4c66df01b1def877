package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPosterCache(t *testing.T) (PosterFileCache, string) {
	t.Helper()
	dir := t.TempDir()
	cache, err := NewPosterCache(config.ClientFiles{PosterCacheDir: dir}, logger.Nop())
	require.NoError(t, err)
	return cache, dir
}

func TestNewPosterCache_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "posters")

	_, err := NewPosterCache(config.ClientFiles{PosterCacheDir: dir}, logger.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPosterCache_SaveThenLoad(t *testing.T) {
	cache, _ := newTestPosterCache(t)
	ctx := context.Background()

	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0} // jpeg magic

	require.NoError(t, cache.Save(ctx, "/abc123.jpg", payload))

	data, err := cache.Load(ctx, "/abc123.jpg")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestPosterCache_LoadMissing(t *testing.T) {
	cache, _ := newTestPosterCache(t)

	_, err := cache.Load(context.Background(), "/never-saved.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPosterNotCached))
}

func TestPosterCache_File_UsesBaseName(t *testing.T) {
	cache, dir := newTestPosterCache(t)

	t.Run("leading slash stripped", func(t *testing.T) {
		file, err := cache.File("/abc123.jpg")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "abc123.jpg"), file)
	})

	t.Run("bare name unchanged", func(t *testing.T) {
		file, err := cache.File("abc123.jpg")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "abc123.jpg"), file)
	})

	t.Run("same entry with and without slash", func(t *testing.T) {
		withSlash, err := cache.File("/poster.jpg")
		require.NoError(t, err)
		bare, err := cache.File("poster.jpg")
		require.NoError(t, err)
		assert.Equal(t, withSlash, bare)
	})
}

func TestPosterCache_File_InvalidPath(t *testing.T) {
	cache, _ := newTestPosterCache(t)

	t.Run("empty path", func(t *testing.T) {
		_, err := cache.File("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidImagePath))
	})

	t.Run("bare separator", func(t *testing.T) {
		_, err := cache.File("/")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidImagePath))
	})
}

func TestPosterCache_SaveOverwrites(t *testing.T) {
	cache, _ := newTestPosterCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "/p.jpg", []byte("old")))
	require.NoError(t, cache.Save(ctx, "/p.jpg", []byte("new")))

	data, err := cache.Load(ctx, "/p.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}
