// Package storage abstracts where uploaded images live: local disk (served
// under /uploads) or an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("storage: file not found")

type Storage interface {
	// Save writes the file under the given name; names are generated by the
	// caller and unique, so Save never overwrites.
	Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) error
	// Delete removes the named file, returning ErrNotFound if absent.
	Delete(ctx context.Context, filename string) error
	// URL returns the public path or address for a stored file.
	URL(filename string) string
}
