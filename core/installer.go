package core

import (
	"os"
	"path/filepath"

	"github.com/interlinx/bootstrap/contracts"
)

// ArchiveInstaller expands a verified archive under the install root and
// then independently confirms the expected directory appeared. The
// second check guards against archives whose internal top-level naming
// convention silently changed.
type ArchiveInstaller struct {
	extractor  contracts.Extractor
	fileSystem contracts.FileChecker
}

func NewArchiveInstaller(extractor contracts.Extractor, fileSystem contracts.FileChecker) *ArchiveInstaller {
	return &ArchiveInstaller{extractor: extractor, fileSystem: fileSystem}
}

func (this *ArchiveInstaller) Install(archivePath, rootDir, expectedDir string) (string, error) {
	if err := this.extractor.Extract(archivePath, rootDir); err != nil {
		return "", &contracts.InstallError{Kind: contracts.ExtractionFailed, Path: archivePath, Err: err}
	}
	resultPath := filepath.Join(rootDir, expectedDir)
	if _, err := this.fileSystem.Stat(resultPath); os.IsNotExist(err) {
		return "", &contracts.InstallError{Kind: contracts.LayoutMismatch, Path: resultPath}
	} else if err != nil {
		return "", err
	}
	return resultPath, nil
}
