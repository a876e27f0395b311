package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/interlinx/bootstrap/contracts"
)

type memoryFile struct {
	content []byte
	mode    os.FileMode
	mod     time.Time
}

// InMemoryFileSystem satisfies the filesystem contracts for tests
// without touching the disk. Directories exist only when created
// explicitly via MkdirAll (or by an extractor fake).
type InMemoryFileSystem struct {
	files       map[string]*memoryFile
	directories map[string]struct{}
}

func NewInMemoryFileSystem() *InMemoryFileSystem {
	return &InMemoryFileSystem{
		files:       make(map[string]*memoryFile),
		directories: make(map[string]struct{}),
	}
}

func (this *InMemoryFileSystem) WriteFile(path string, content []byte) {
	this.files[path] = &memoryFile{content: content, mode: 0644, mod: time.Now()}
}

func (this *InMemoryFileSystem) MkdirAll(path string) {
	this.directories[path] = struct{}{}
}

func (this *InMemoryFileSystem) ReadFile(path string) ([]byte, error) {
	file, found := this.files[path]
	if !found {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return file.content, nil
}

func (this *InMemoryFileSystem) Open(path string) (io.ReadCloser, error) {
	file, found := this.files[path]
	if !found {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return io.NopCloser(bytes.NewReader(file.content)), nil
}

func (this *InMemoryFileSystem) Stat(path string) (contracts.FileInfo, error) {
	if file, found := this.files[path]; found {
		return FileInfo{path: path, size: int64(len(file.content)), mod: file.mod, mode: file.mode}, nil
	}
	if _, found := this.directories[path]; found {
		return FileInfo{path: path, mod: time.Now(), mode: os.ModeDir | 0755}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (this *InMemoryFileSystem) Rename(oldPath, newPath string) error {
	file, found := this.files[oldPath]
	if !found {
		return &os.PathError{Op: "rename", Path: oldPath, Err: os.ErrNotExist}
	}
	delete(this.files, oldPath)
	this.files[newPath] = file
	return nil
}

func (this *InMemoryFileSystem) Chmod(name string, mode os.FileMode) error {
	file, found := this.files[name]
	if !found {
		return &os.PathError{Op: "chmod", Path: name, Err: os.ErrNotExist}
	}
	file.mode = mode
	return nil
}

func (this *InMemoryFileSystem) FileMode(name string) (os.FileMode, error) {
	file, found := this.files[name]
	if !found {
		return 0, fmt.Errorf("no such file: %s", name)
	}
	return file.mode, nil
}

////////////////////////////////////////

type FileInfo struct {
	path string
	size int64
	mod  time.Time
	mode os.FileMode
}

func (this FileInfo) Path() string       { return this.path }
func (this FileInfo) Size() int64        { return this.size }
func (this FileInfo) ModTime() time.Time { return this.mod }
func (this FileInfo) Mode() os.FileMode  { return this.mode }
