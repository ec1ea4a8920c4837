package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local is a Storage backed by a directory on the local disk
type Local struct {
	maxFileSize int64 // Maximum number of bytes for files
	basePath    string
}

// NewLocal creates a new Local filesystem with the given base path
// basePath is the base directory to save the files to
// maxSize is the max number of bytes that a file can be
func NewLocal(basePath string, maxSize int64) (*Local, error) {
	p, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return nil, fmt.Errorf("unable to create asset directory: %w", err)
	}

	return &Local{basePath: p, maxFileSize: maxSize}, nil
}

// Save writes the contents to a temporary file next to the destination and
// renames it into place, so readers never observe a partial image.
func (l *Local) Save(path string, contents io.Reader) error {
	fp := l.fullPath(path)
	dir := filepath.Dir(fp)

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("unable to create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "temp-*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()
	// no-op once the rename succeeded
	defer os.Remove(tempPath)

	// read one byte past the limit so oversized uploads can be told apart
	written, err := io.Copy(tempFile, io.LimitReader(contents, l.maxFileSize+1))
	if err != nil {
		tempFile.Close()
		return fmt.Errorf("unable to write to file: %w", err)
	}

	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	if written > l.maxFileSize {
		return fmt.Errorf("%w of %d bytes", ErrTooLarge, l.maxFileSize)
	}

	if err := os.Rename(tempPath, fp); err != nil {
		return fmt.Errorf("unable to move temporary file to final location: %w", err)
	}

	return nil
}

func (l *Local) Get(path string) (*os.File, error) {
	f, err := os.Open(l.fullPath(path))
	if err != nil {
		return nil, fmt.Errorf("unable to open the file: %w", err)
	}

	return f, nil
}

func (l *Local) Delete(path string) error {
	err := os.Remove(l.fullPath(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to delete the file: %w", err)
	}

	return nil
}

// fullPath resolves a stored path under the base directory. Cleaning the
// path as if it were absolute drops any ".." that would escape the root.
func (l *Local) fullPath(path string) string {
	return filepath.Join(l.basePath, filepath.Clean("/"+filepath.FromSlash(path)))
}
