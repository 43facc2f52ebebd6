package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Disk stores files in a flat local directory.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

// Dir is the backing directory, used for static file serving.
func (d *Disk) Dir() string { return d.dir }

func (d *Disk) Save(_ context.Context, filename string, r io.Reader, _ int64, _ string) error {
	// filepath.Base guards against path traversal in the stored name.
	dst, err := os.Create(filepath.Join(d.dir, filepath.Base(filename)))
	if err != nil {
		return err
	}
	defer dst.Close()
	_, err = io.Copy(dst, r)
	return err
}

func (d *Disk) Delete(_ context.Context, filename string) error {
	err := os.Remove(filepath.Join(d.dir, filepath.Base(filename)))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

func (d *Disk) URL(filename string) string {
	return "/uploads/" + filename
}
