// Package write provides the filesystem capability used to emit generated files.
package write

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Writer creates files and reports whether a path is already taken.
type Writer interface {
	Write(path string, content []byte, options WriteOptions) error
	Exists(path string) (bool, error)
}

type WriteOptions struct {
	CreateDirs bool
	Overwrite  bool
	Atomic     bool
}

// DefaultOptions creates missing parent directories and never replaces an
// existing file.
func DefaultOptions() WriteOptions {
	return WriteOptions{CreateDirs: true}
}

// BaseWriter writes to the local filesystem.
type BaseWriter struct{}

func NewBaseWriter() *BaseWriter {
	return &BaseWriter{}
}

// Write stores content at path. Without Overwrite it fails with an error
// matching fs.ErrExist when path already exists, even if the file appeared
// after a previous Exists call.
func (bw *BaseWriter) Write(path string, content []byte, options WriteOptions) error {
	if options.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directories: %w", err)
		}
	}

	if options.Atomic {
		return bw.atomicWrite(path, content, options.Overwrite)
	}

	return bw.directWrite(path, content, options.Overwrite)
}

func (bw *BaseWriter) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// atomicWrite stages content in a sibling temp file and moves it into
// place. Without overwrite the move is a hard link, which refuses to
// replace an existing file.
func (bw *BaseWriter) atomicWrite(path string, content []byte, overwrite bool) error {
	tempPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		os.Remove(tempPath)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}

	if overwrite {
		if err := os.Rename(tempPath, path); err != nil {
			os.Remove(tempPath)
			return err
		}
		return nil
	}

	defer os.Remove(tempPath)
	if err := os.Link(tempPath, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

func (bw *BaseWriter) directWrite(path string, content []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}

	if _, err := file.Write(content); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
