// Package storage holds uploaded media files. The rest of the system only
// sees the FileStore interface; rows in the media table carry the derived
// access URL.
package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore saves uploaded files under a flat name.
type FileStore interface {
	Save(name string, r io.Reader) error
}

// DiskStore is a FileStore on a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns a store on it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory files are saved under.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes r to a file called name inside the store directory.
func (s *DiskStore) Save(name string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return errors.Wrap(err, "create media file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return errors.Wrap(err, "write media file")
	}

	return nil
}
