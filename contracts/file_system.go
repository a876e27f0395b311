package contracts

import (
	"io"
	"os"
	"time"
)

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type FileOpener interface {
	Open(path string) (io.ReadCloser, error)
}

type FileChecker interface {
	Stat(path string) (FileInfo, error)
}

type FileRenamer interface {
	Rename(oldPath, newPath string) error
}

type Chmod interface {
	Chmod(name string, mode os.FileMode) error
}

type FileInfo interface {
	Path() string
	Size() int64
	ModTime() time.Time
	Mode() os.FileMode
}

// Extractor expands an archive's full contents under destination,
// preserving the archive's internal top-level directory.
type Extractor interface {
	Extract(archivePath, destination string) error
}

type Environment interface {
	LookupEnv(key string) (value string, set bool)
}
