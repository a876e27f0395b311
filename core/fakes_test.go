package core

import (
	"net/http"
	"path/filepath"

	"github.com/interlinx/bootstrap/contracts"
	"github.com/interlinx/bootstrap/fs"
)

///////////////////////////////////////////////////////////////////////////////////////////////

type FakeReleaseSource struct {
	latest      contracts.Release
	latestError error
	releases    map[string]contracts.Release
	tagError    error

	latestCalls int
	byTagCalls  int
}

func NewFakeReleaseSource() *FakeReleaseSource {
	return &FakeReleaseSource{releases: make(map[string]contracts.Release)}
}

func (this *FakeReleaseSource) LatestRelease(repo contracts.RepositoryRef) (contracts.Release, error) {
	this.latestCalls++
	if this.latestError != nil {
		return contracts.Release{}, this.latestError
	}
	return this.latest, nil
}

func (this *FakeReleaseSource) ReleaseByTag(repo contracts.RepositoryRef, tag string) (contracts.Release, error) {
	this.byTagCalls++
	if this.tagError != nil {
		return contracts.Release{}, this.tagError
	}
	release, found := this.releases[tag]
	if !found {
		return contracts.Release{}, &contracts.HostStatusError{Status: http.StatusNotFound}
	}
	return release, nil
}

func (this *FakeReleaseSource) networkCalls() int {
	return this.latestCalls + this.byTagCalls
}

///////////////////////////////////////////////////////////////////////////////////////////////

// FakeDownloader writes canned payloads into the in-memory filesystem.
// An asset with no canned payload still "succeeds" with zero bytes,
// which is exactly the empty-payload case the fetcher must catch.
type FakeDownloader struct {
	fileSystem *fs.InMemoryFileSystem
	payloads   map[string][]byte
	err        error
	calls      int
}

func NewFakeDownloader(fileSystem *fs.InMemoryFileSystem) *FakeDownloader {
	return &FakeDownloader{fileSystem: fileSystem, payloads: make(map[string][]byte)}
}

func (this *FakeDownloader) Download(repo contracts.RepositoryRef, target contracts.DownloadTarget) error {
	this.calls++
	if this.err != nil {
		return this.err
	}
	this.fileSystem.WriteFile(target.Destination, this.payloads[target.Asset.Name])
	return nil
}

///////////////////////////////////////////////////////////////////////////////////////////////

type FakeExtractor struct {
	fileSystem  *fs.InMemoryFileSystem
	producesDir string
	err         error
	calls       int
}

func NewFakeExtractor(fileSystem *fs.InMemoryFileSystem, producesDir string) *FakeExtractor {
	return &FakeExtractor{fileSystem: fileSystem, producesDir: producesDir}
}

func (this *FakeExtractor) Extract(archivePath, destination string) error {
	this.calls++
	if this.err != nil {
		return this.err
	}
	this.fileSystem.MkdirAll(filepath.Join(destination, this.producesDir))
	return nil
}
