package shell

import (
	"github.com/mholt/archiver"
)

// TarGzExtractor expands a .tar.gz archive in place under destination.
type TarGzExtractor struct{}

func NewTarGzExtractor() *TarGzExtractor {
	return &TarGzExtractor{}
}

func (this *TarGzExtractor) Extract(archivePath, destination string) error {
	return archiver.NewTarGz().Unarchive(archivePath, destination)
}
