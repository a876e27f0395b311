package fs

import (
	"io"
	"os"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"
)

func TestMemoryFixture(t *testing.T) {
	gunit.Run(new(MemoryFixture), t)
}

type MemoryFixture struct {
	*gunit.Fixture
	fileSystem *InMemoryFileSystem
}

func (this *MemoryFixture) Setup() {
	this.fileSystem = NewInMemoryFileSystem()
}

func (this *MemoryFixture) TestWriteFileReadFile() {
	this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	content, err := this.fileSystem.ReadFile("/file.txt")

	this.So(err, should.BeNil)
	this.So(content, should.Resemble, []byte("Hello World"))
}

func (this *MemoryFixture) TestReadMissingFile() {
	_, err := this.fileSystem.ReadFile("/file.txt")

	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestOpenWrittenFile() {
	this.fileSystem.WriteFile("/file.txt", []byte("Hello World"))

	reader, err := this.fileSystem.Open("/file.txt")

	this.So(err, should.BeNil)
	raw, _ := io.ReadAll(reader)
	this.So(raw, should.Resemble, []byte("Hello World"))
}

func (this *MemoryFixture) TestStatFileAndDirectory() {
	this.fileSystem.WriteFile("/file.txt", []byte("Hello"))
	this.fileSystem.MkdirAll("/opt/thing-v1")

	file, err := this.fileSystem.Stat("/file.txt")
	this.So(err, should.BeNil)
	this.So(file.Size(), should.Equal, 5)

	directory, err := this.fileSystem.Stat("/opt/thing-v1")
	this.So(err, should.BeNil)
	this.So(directory.Mode().IsDir(), should.BeTrue)

	_, err = this.fileSystem.Stat("/absent")
	this.So(os.IsNotExist(err), should.BeTrue)
}

func (this *MemoryFixture) TestRenameMovesContent() {
	this.fileSystem.WriteFile("/staged", []byte("payload"))

	err := this.fileSystem.Rename("/staged", "/final")

	this.So(err, should.BeNil)
	content, _ := this.fileSystem.ReadFile("/final")
	this.So(content, should.Resemble, []byte("payload"))
	_, err = this.fileSystem.ReadFile("/staged")
	this.So(err, should.NotBeNil)
}

func (this *MemoryFixture) TestChmodRecorded() {
	this.fileSystem.WriteFile("/tool", []byte("bytes"))

	err := this.fileSystem.Chmod("/tool", 0755)

	this.So(err, should.BeNil)
	mode, _ := this.fileSystem.FileMode("/tool")
	this.So(mode, should.Equal, 0755)
}
