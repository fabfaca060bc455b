package storage

import "github.com/pkg/errors"

func InitStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("empty log file path")
	}
	return NewFileStore(path), nil
}
