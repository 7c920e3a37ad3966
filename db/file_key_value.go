package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kjk/common/atomicfile"
)

// FileKeyValue stores each key as <Dir>/<key>.json. Writes are atomic: a
// failed write leaves the previous value in place.
type FileKeyValue struct {
	Dir string
}

func NewFileKeyValue(dir string) (*FileKeyValue, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &FileKeyValue{Dir: dir}, nil
}

func (kv *FileKeyValue) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(kv.Dir, key+".json"), nil
}

func (kv *FileKeyValue) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := kv.path(key)
	if err != nil {
		return nil, false, err
	}

	value, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (kv *FileKeyValue) Set(_ context.Context, key string, value []byte) error {
	path, err := kv.path(key)
	if err != nil {
		return err
	}

	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if _, err := f.Write(value); err != nil {
		return err
	}
	return f.Close()
}
