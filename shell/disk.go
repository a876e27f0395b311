package shell

import (
	"io"
	"os"
	"time"

	"github.com/interlinx/bootstrap/contracts"
)

type DiskFileSystem struct{}

func NewDiskFileSystem() *DiskFileSystem {
	return &DiskFileSystem{}
}

func (this *DiskFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (this *DiskFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (this *DiskFileSystem) Stat(path string) (contracts.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return FileInfo{path: path, size: info.Size(), mod: info.ModTime(), mode: info.Mode()}, nil
}

func (this *DiskFileSystem) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func (this *DiskFileSystem) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
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
