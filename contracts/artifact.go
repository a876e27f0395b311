package contracts

import (
	"fmt"
	"path"
)

type ArtifactKind int

const (
	ControllerArtifact ArtifactKind = iota
	AgentArtifact
)

// Artifact identifies one installable thing and carries its own resolved
// version, so nothing downstream ever has to choose between a requested
// and a resolved value by name.
type Artifact struct {
	Kind             ArtifactKind
	Repo             RepositoryRef
	RequestedVersion string
	ResolvedVersion  string
}

// Version is the tag every filename and path for this artifact derives
// from: the resolved tag once resolution has happened, the requested tag
// before (used only for the already-present check).
func (this Artifact) Version() string {
	if this.ResolvedVersion != "" {
		return this.ResolvedVersion
	}
	return this.RequestedVersion
}

func (this Artifact) ShortName() string {
	return this.Repo.Name
}

// AssetName composes the release asset filename. Controllers ship as
// tar.gz archives; agents ship as bare executables.
func (this Artifact) AssetName(platform string) string {
	base := fmt.Sprintf("%s-%s-%s", this.Repo.Name, this.Version(), platform)
	if this.Kind == ControllerArtifact {
		return base + ".tar.gz"
	}
	return base
}

func (this Artifact) ChecksumAssetName(platform string) string {
	return this.AssetName(platform) + ".sha256"
}

// InstalledDirName is the directory the controller archive is expected
// to expand into under the install root.
func (this Artifact) InstalledDirName() string {
	return this.Repo.Name + "-" + this.Version()
}

func (this Artifact) Title() string {
	version := this.Version()
	if version == "" {
		version = "latest"
	}
	return fmt.Sprintf("[%s @ %s]", this.Repo.Name, version)
}

type RepositoryRef struct {
	Owner string
	Name  string
}

func (this RepositoryRef) String() string {
	return path.Join(this.Owner, this.Name)
}
