package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteByURLRemovesBackingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tyre.jpg")
	require.NoError(t, os.WriteFile(path, []byte("img"), 0o644))

	store := NewDiskStore(dir)
	require.NoError(t, store.DeleteByURL("https://shop.example.in/uploads/tyre.jpg"))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestDeleteByURLRejectsKeylessURL(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	require.Error(t, store.DeleteByURL("https://shop.example.in/"))
}

// A missing backing file is advisory cleanup; CleanupImages must not
// panic or abort on errors.
func TestCleanupImagesSwallowsFailures(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	CleanupImages(store, []string{"https://shop.example.in/uploads/gone.jpg"})
	CleanupImages(nil, []string{"https://shop.example.in/uploads/gone.jpg"})
}
