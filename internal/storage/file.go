package storage

import (
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

const filePerm = 0644

// FileStore keeps the argument log in a single text file.
// It performs no locking: concurrent processes appending to the same path may interleave.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether anything, file or directory, is present at the path
func (s *FileStore) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, "stat %s", s.path)
}

// Create creates or truncates the file and writes header as its first line
func (s *FileStore) Create(header string) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrapf(err, "create %s", s.path)
	}
	defer f.Close()

	if _, err := f.WriteString(header + "\n"); err != nil {
		return errors.Wrapf(err, "write header to %s", s.path)
	}
	return nil
}

// Append opens the file in append mode, creating it if needed, and writes line
func (s *FileStore) Append(line string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return errors.Wrapf(err, "open %s", s.path)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return errors.Wrapf(err, "append to %s", s.path)
	}
	return nil
}
