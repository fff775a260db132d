// Package testing provides an in-memory filesystem that serves templates
// as an fs.FS and accepts generated files as a write.Writer.
package testing

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/cpcf/scaffold/write"
)

type MemoryFS struct {
	mu       sync.RWMutex
	files    map[string]*MemoryFile
	failures map[string]error
}

var _ write.Writer = (*MemoryFS)(nil)

type MemoryFile struct {
	name    string
	content []byte
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:    make(map[string]*MemoryFile),
		failures: make(map[string]error),
	}
}

// WriteFile stores data at name, creating parent directories.
func (mfs *MemoryFS) WriteFile(name string, data []byte) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.writeFile(path.Clean(name), data)
}

func (mfs *MemoryFS) writeFile(name string, data []byte) {
	mfs.files[name] = &MemoryFile{
		name:    name,
		content: append([]byte(nil), data...),
		mode:    0o644,
		modTime: time.Now(),
	}
	mfs.ensureDir(path.Dir(name))
}

// ReadFile returns a copy of the content stored at name.
func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = path.Clean(name)
	if err := mfs.failures[name]; err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	file, exists := mfs.files[name]
	if !exists || file.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), file.content...), nil
}

// FailOn makes every open of or write to name return err.
func (mfs *MemoryFS) FailOn(name string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.failures[path.Clean(name)] = err
}

// Files lists the regular files held, sorted.
func (mfs *MemoryFS) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var names []string
	for name, file := range mfs.files {
		if !file.isDir {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Write implements write.Writer.
func (mfs *MemoryFS) Write(name string, content []byte, options write.WriteOptions) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = path.Clean(name)
	if err := mfs.failures[name]; err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}

	if existing, exists := mfs.files[name]; exists {
		if existing.isDir {
			return &fs.PathError{Op: "write", Path: name, Err: fmt.Errorf("is a directory")}
		}
		if !options.Overwrite {
			return &fs.PathError{Op: "write", Path: name, Err: fs.ErrExist}
		}
	}

	dir := path.Dir(name)
	if _, exists := mfs.files[dir]; !exists && dir != "." && dir != "/" && !options.CreateDirs {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}

	mfs.writeFile(name, content)
	return nil
}

// Exists implements write.Writer.
func (mfs *MemoryFS) Exists(name string) (bool, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	_, exists := mfs.files[path.Clean(name)]
	return exists, nil
}

func (mfs *MemoryFS) ensureDir(dir string) {
	if dir == "." || dir == "/" {
		return
	}

	if _, exists := mfs.files[dir]; !exists {
		mfs.files[dir] = &MemoryFile{
			name:    dir,
			mode:    0o755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
		mfs.ensureDir(path.Dir(dir))
	}
}

func (mfs *MemoryFS) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = path.Clean(name)
	if err := mfs.failures[name]; err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if name == "." {
		return &memoryFileHandle{file: &MemoryFile{name: ".", mode: 0o755 | fs.ModeDir, isDir: true}, mfs: mfs, path: name}, nil
	}

	file, exists := mfs.files[name]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &memoryFileHandle{file: file, mfs: mfs, path: name}, nil
}

func (mfs *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	name = path.Clean(name)
	if name != "." {
		if dir, exists := mfs.files[name]; !exists || !dir.isDir {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
		}
	}
	return mfs.readDir(name), nil
}

func (mfs *MemoryFS) readDir(name string) []fs.DirEntry {
	var entries []fs.DirEntry
	for filePath, file := range mfs.files {
		if path.Dir(filePath) == name {
			entries = append(entries, &memoryDirEntry{file})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries
}

type memoryFileHandle struct {
	file   *MemoryFile
	mfs    *MemoryFS
	path   string
	offset int
}

func (f *memoryFileHandle) Read(b []byte) (int, error) {
	if f.file.isDir {
		return 0, &fs.PathError{Op: "read", Path: f.path, Err: fs.ErrInvalid}
	}

	if f.offset >= len(f.file.content) {
		return 0, io.EOF
	}

	n := copy(b, f.file.content[f.offset:])
	f.offset += n
	return n, nil
}

func (f *memoryFileHandle) Stat() (fs.FileInfo, error) {
	return f.file, nil
}

func (f *memoryFileHandle) Close() error {
	return nil
}

func (f *memoryFileHandle) ReadDir(n int) ([]fs.DirEntry, error) {
	if !f.file.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: f.path, Err: fs.ErrInvalid}
	}

	entries, err := f.mfs.ReadDir(f.path)
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		return entries, nil
	}

	if n > len(entries) {
		n = len(entries)
	}

	return entries[:n], nil
}

type memoryDirEntry struct {
	file *MemoryFile
}

func (e *memoryDirEntry) Name() string {
	return path.Base(e.file.name)
}

func (e *memoryDirEntry) IsDir() bool {
	return e.file.isDir
}

func (e *memoryDirEntry) Type() fs.FileMode {
	return e.file.mode.Type()
}

func (e *memoryDirEntry) Info() (fs.FileInfo, error) {
	return e.file, nil
}

func (f *MemoryFile) Name() string {
	return path.Base(f.name)
}

func (f *MemoryFile) Size() int64 {
	return int64(len(f.content))
}

func (f *MemoryFile) Mode() fs.FileMode {
	return f.mode
}

func (f *MemoryFile) ModTime() time.Time {
	return f.modTime
}

func (f *MemoryFile) IsDir() bool {
	return f.isDir
}

func (f *MemoryFile) Sys() any {
	return nil
}
