// Package storage is the object-store collaborator behind product and
// QR images. The API only ever stores URL strings; this disk-backed
// implementation serves the files it holds from the uploads directory.
package storage

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// ObjectStore deletes a stored object by the URL the catalog recorded
// for it. Deletion is advisory cleanup: callers log failures and move
// on rather than failing the surrounding operation.
type ObjectStore interface {
	DeleteByURL(rawURL string) error
}

// DiskStore maps /uploads/... URLs onto files under Dir.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

// DeleteByURL derives the on-disk key from a stored image URL and
// removes the backing file.
func (s *DiskStore) DeleteByURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	key := path.Base(u.Path)
	if key == "" || key == "." || key == "/" {
		return fmt.Errorf("no object key in %q", rawURL)
	}

	return os.Remove(filepath.Join(s.Dir, key))
}

// CleanupImages removes the backing files for the given URLs on a
// best-effort basis. A failed delete leaves an orphaned file, not a
// broken record, so failures are logged and swallowed.
func CleanupImages(store ObjectStore, urls []string) {
	if store == nil {
		return
	}
	for _, u := range urls {
		if err := store.DeleteByURL(u); err != nil {
			log.Printf("⚠️ Failed to delete backing image %s: %v", u, err)
		}
	}
}
