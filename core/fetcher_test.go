package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/interlinx/bootstrap/contracts"
	"github.com/interlinx/bootstrap/fs"
)

func TestFetcherFixture(t *testing.T) {
	gunit.Run(new(FetcherFixture), t)
}

type FetcherFixture struct {
	*gunit.Fixture
	fileSystem *fs.InMemoryFileSystem
	downloader *FakeDownloader
	fetcher    *Fetcher
	repo       contracts.RepositoryRef
}

func (this *FetcherFixture) Setup() {
	this.fileSystem = fs.NewInMemoryFileSystem()
	this.downloader = NewFakeDownloader(this.fileSystem)
	this.fetcher = NewFetcher(this.downloader, this.fileSystem)
	this.repo = contracts.RepositoryRef{Owner: "interlinx", Name: "interlinx-controller"}
}

func (this *FetcherFixture) target() contracts.DownloadTarget {
	return contracts.DownloadTarget{
		Asset:       contracts.ReleaseAsset{ID: 7, Name: "archive.tar.gz"},
		Destination: "/tmp/archive.tar.gz",
		Description: "controller archive",
	}
}

func (this *FetcherFixture) TestSuccessfulTransferWithContent() {
	this.downloader.payloads["archive.tar.gz"] = []byte("content")

	err := this.fetcher.Fetch(this.repo, this.target())

	this.So(err, should.BeNil)
	content, _ := this.fileSystem.ReadFile("/tmp/archive.tar.gz")
	this.So(content, should.Resemble, []byte("content"))
}

func (this *FetcherFixture) TestZeroByteSuccessIsEmptyPayload() {
	err := this.fetcher.Fetch(this.repo, this.target())

	var fetch *contracts.FetchError
	this.So(errors.As(err, &fetch), should.BeTrue)
	this.So(fetch.Kind, should.Equal, contracts.FetchEmptyPayload)
}

func (this *FetcherFixture) TestTransportErrorPassedThrough() {
	transport := &contracts.FetchError{Kind: contracts.FetchUnauthorized, Status: 401, Description: "controller archive"}
	this.downloader.err = transport

	err := this.fetcher.Fetch(this.repo, this.target())

	this.So(err, should.Equal, transport)
}

func (this *FetcherFixture) TestNoRetryOnFailure() {
	this.downloader.err = errors.New("connection reset")

	_ = this.fetcher.Fetch(this.repo, this.target())

	this.So(this.downloader.calls, should.Equal, 1)
}
