// Package files is the asset store for uploaded images. Stored paths are
// relative to the store root and double as the public URL of the asset,
// e.g. "/uploads/1718000000000-42-chair.jpg".
package files

import (
	"errors"
	"io"
	"os"
)

// ErrTooLarge is returned by Save when the contents exceed the size limit
var ErrTooLarge = errors.New("file size exceeds maximum allowed size")

// Storage defines the behaviour of the image asset store
type Storage interface {
	// Save writes contents to path, replacing any existing file
	Save(path string, contents io.Reader) error

	// Get opens the file at path for reading
	Get(path string) (*os.File, error)

	// Delete removes the file at path. Removing a missing file is not an error.
	Delete(path string) error
}
