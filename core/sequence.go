package core

import (
	"log"
	"os"
	"path/filepath"

	"github.com/interlinx/bootstrap/contracts"
)

type State int

const (
	StateNotStarted State = iota
	StateVersionResolved
	StateAssetLocated
	StateDownloaded
	StateVerified
	StateInstalled
	StateDone
	StateFailed
)

func (this State) String() string {
	switch this {
	case StateNotStarted:
		return "not-started"
	case StateVersionResolved:
		return "version-resolved"
	case StateAssetLocated:
		return "asset-located"
	case StateDownloaded:
		return "downloaded"
	case StateVerified:
		return "verified"
	case StateInstalled:
		return "installed"
	case StateDone:
		return "done"
	default:
		return "failed"
	}
}

type SequenceFileSystem interface {
	contracts.FileChecker
	contracts.FileRenamer
	contracts.Chmod
}

// ArtifactSequence runs one artifact's fetch sequence as a strictly
// linear state machine: resolve, locate, fetch, then verify and install
// for archives or move-and-chmod for freestanding executables. The
// first failure is terminal. When the target is already on disk the
// sequence goes straight to done without touching the network.
type ArtifactSequence struct {
	artifact   contracts.Artifact
	resolver   *ReleaseResolver
	locator    *AssetLocator
	fetcher    *Fetcher
	verifier   *ChecksumVerifier
	installer  *ArchiveInstaller
	fileSystem SequenceFileSystem

	platform    string
	tempDir     string
	installRoot string // controller archives expand here
	workDir     string // agent executables land here

	state   State
	failure error
}

func NewArtifactSequence(
	artifact contracts.Artifact,
	resolver *ReleaseResolver,
	locator *AssetLocator,
	fetcher *Fetcher,
	verifier *ChecksumVerifier,
	installer *ArchiveInstaller,
	fileSystem SequenceFileSystem,
	platform string,
	tempDir string,
	installRoot string,
	workDir string,
) *ArtifactSequence {
	return &ArtifactSequence{
		artifact:    artifact,
		resolver:    resolver,
		locator:     locator,
		fetcher:     fetcher,
		verifier:    verifier,
		installer:   installer,
		fileSystem:  fileSystem,
		platform:    platform,
		tempDir:     tempDir,
		installRoot: installRoot,
		workDir:     workDir,
		state:       StateNotStarted,
	}
}

func (this *ArtifactSequence) State() State   { return this.state }
func (this *ArtifactSequence) Failure() error { return this.failure }

// ResolvedVersion is empty until the sequence has passed resolution (or
// short-circuited on a requested version already present on disk).
func (this *ArtifactSequence) ResolvedVersion() string {
	return this.artifact.Version()
}

func (this *ArtifactSequence) Run() error {
	// A caller-supplied version names the target path without any
	// network activity; "latest" has to resolve first.
	if this.artifact.RequestedVersion != "" && this.alreadyPresent() {
		log.Printf("Already installed, skipping: %s", this.artifact.Title())
		this.state = StateDone
		return nil
	}

	version, err := this.resolver.Resolve(this.artifact.RequestedVersion)
	if err != nil {
		return this.fail(err)
	}
	this.artifact.ResolvedVersion = version
	this.state = StateVersionResolved
	log.Printf("Resolved version: %s", this.artifact.Title())

	if this.alreadyPresent() {
		log.Printf("Already installed, skipping: %s", this.artifact.Title())
		this.state = StateDone
		return nil
	}

	if this.artifact.Kind == contracts.ControllerArtifact {
		return this.runController()
	}
	return this.runAgent()
}

func (this *ArtifactSequence) runController() error {
	archive, err := this.locator.Locate(this.artifact.ResolvedVersion, this.artifact.AssetName(this.platform))
	if err != nil {
		return this.fail(err)
	}
	checksum, err := this.locator.Locate(this.artifact.ResolvedVersion, this.artifact.ChecksumAssetName(this.platform))
	if err != nil {
		return this.fail(err)
	}
	this.state = StateAssetLocated

	archivePath := filepath.Join(this.tempDir, archive.Name)
	checksumPath := filepath.Join(this.tempDir, checksum.Name)
	if err := this.download(archive, archivePath, "controller archive"); err != nil {
		return this.fail(err)
	}
	if err := this.download(checksum, checksumPath, "controller checksum"); err != nil {
		return this.fail(err)
	}
	this.state = StateDownloaded

	if err := this.verifier.Verify(archivePath, checksumPath); err != nil {
		return this.fail(err)
	}
	this.state = StateVerified
	log.Printf("Checksum verified: %s", this.artifact.Title())

	resultPath, err := this.installer.Install(archivePath, this.installRoot, this.artifact.InstalledDirName())
	if err != nil {
		return this.fail(err)
	}
	this.state = StateInstalled
	log.Printf("Installed %s to %s", this.artifact.Title(), resultPath)

	this.state = StateDone
	return nil
}

func (this *ArtifactSequence) runAgent() error {
	asset, err := this.locator.Locate(this.artifact.ResolvedVersion, this.artifact.AssetName(this.platform))
	if err != nil {
		return this.fail(err)
	}
	this.state = StateAssetLocated

	stagedPath := filepath.Join(this.tempDir, asset.Name)
	if err := this.download(asset, stagedPath, "agent executable"); err != nil {
		return this.fail(err)
	}
	this.state = StateDownloaded

	finalPath := filepath.Join(this.workDir, asset.Name)
	if err := this.fileSystem.Rename(stagedPath, finalPath); err != nil {
		return this.fail(err)
	}
	if err := this.fileSystem.Chmod(finalPath, 0755); err != nil {
		return this.fail(err)
	}
	this.state = StateInstalled
	log.Printf("Installed %s to %s", this.artifact.Title(), finalPath)

	this.state = StateDone
	return nil
}

func (this *ArtifactSequence) download(asset contracts.ReleaseAsset, destination, description string) error {
	log.Printf("Downloading %s (%s)", description, asset.Name)
	return this.fetcher.Fetch(this.artifact.Repo, contracts.DownloadTarget{
		Asset:       asset,
		Destination: destination,
		Description: description,
	})
}

func (this *ArtifactSequence) alreadyPresent() bool {
	if this.artifact.Version() == "" {
		return false
	}
	_, err := this.fileSystem.Stat(this.targetPath())
	return err == nil
}

func (this *ArtifactSequence) targetPath() string {
	if this.artifact.Kind == contracts.ControllerArtifact {
		return filepath.Join(this.installRoot, this.artifact.InstalledDirName())
	}
	return filepath.Join(this.workDir, this.artifact.AssetName(this.platform))
}

func (this *ArtifactSequence) fail(err error) error {
	this.state = StateFailed
	this.failure = err
	return err
}

// RequireRoot guards sequences that write under the fixed install root.
func RequireRoot(installRoot string) error {
	if os.Geteuid() == 0 {
		return nil
	}
	return &NotRootError{InstallRoot: installRoot}
}

type NotRootError struct {
	InstallRoot string
}

func (this *NotRootError) Error() string {
	return "installing under " + this.InstallRoot + " requires root privileges"
}
