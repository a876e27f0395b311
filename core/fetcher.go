package core

import (
	"os"

	"github.com/interlinx/bootstrap/contracts"
)

// Fetcher wraps the transport-level downloader with the one check the
// transport cannot make for itself: a transfer that reports success but
// leaves a missing or zero-byte destination is an empty payload, not a
// success. A single failed attempt terminates the operation; there is
// no retry at any layer.
type Fetcher struct {
	downloader contracts.AssetDownloader
	fileSystem contracts.FileChecker
}

func NewFetcher(downloader contracts.AssetDownloader, fileSystem contracts.FileChecker) *Fetcher {
	return &Fetcher{downloader: downloader, fileSystem: fileSystem}
}

func (this *Fetcher) Fetch(repo contracts.RepositoryRef, target contracts.DownloadTarget) error {
	if err := this.downloader.Download(repo, target); err != nil {
		return err
	}
	info, err := this.fileSystem.Stat(target.Destination)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		return &contracts.FetchError{Kind: contracts.FetchEmptyPayload, Description: target.Description}
	}
	return err
}
