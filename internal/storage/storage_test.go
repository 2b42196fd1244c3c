package storage_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/repair-shop-platform/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header and IHDR chunk
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
}

func TestDiskStore_SaveProductImage(t *testing.T) {

	t.Run("Success - Stored as product id png", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewDiskStore(dir, "/images/products")
		require.NoError(t, err)
		id := uuid.New()

		path, err := store.SaveProductImage(context.Background(), id, bytes.NewReader(pngBytes))

		require.NoError(t, err)
		assert.Equal(t, "/images/products/"+id.String()+".png", path)

		stored, err := os.ReadFile(filepath.Join(dir, id.String()+".png"))
		require.NoError(t, err)
		assert.Equal(t, pngBytes, stored)
	})

	t.Run("Success - New upload replaces the old one", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewDiskStore(dir, "/images/products/")
		require.NoError(t, err)
		id := uuid.New()

		_, err = store.SaveProductImage(context.Background(), id, bytes.NewReader(pngBytes))
		require.NoError(t, err)
		_, err = store.SaveProductImage(context.Background(), id, bytes.NewReader(pngBytes))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Failure - Not an image", func(t *testing.T) {
		store, err := storage.NewDiskStore(t.TempDir(), "/images/products/")
		require.NoError(t, err)

		_, err = store.SaveProductImage(context.Background(), uuid.New(), strings.NewReader("just some text"))

		assert.ErrorIs(t, err, storage.ErrNotAnImage)
	})

	t.Run("Failure - Too large", func(t *testing.T) {
		store, err := storage.NewDiskStore(t.TempDir(), "/images/products/")
		require.NoError(t, err)
		big := append(append([]byte{}, pngBytes...), make([]byte, storage.MaxImageSize)...)

		_, err = store.SaveProductImage(context.Background(), uuid.New(), bytes.NewReader(big))

		assert.ErrorIs(t, err, storage.ErrImageTooLarge)
	})
}
