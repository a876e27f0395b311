package core

import (
	"fmt"

	"github.com/interlinx/bootstrap/contracts"
)

// AssetLocator finds a named asset within a resolved release. Matching
// is exact and case-sensitive; with duplicate names the first entry
// wins.
type AssetLocator struct {
	source contracts.ReleaseSource
	repo   contracts.RepositoryRef
}

func NewAssetLocator(source contracts.ReleaseSource, repo contracts.RepositoryRef) *AssetLocator {
	return &AssetLocator{source: source, repo: repo}
}

func (this *AssetLocator) Locate(version, assetName string) (contracts.ReleaseAsset, error) {
	release, err := this.source.ReleaseByTag(this.repo, version)
	if err != nil {
		return contracts.ReleaseAsset{}, fmt.Errorf("loading release %s@%s: %w", this.repo, version, err)
	}
	for _, asset := range release.Assets {
		if asset.Name == assetName {
			return asset, nil
		}
	}
	return contracts.ReleaseAsset{}, fmt.Errorf("%w: %q in %s@%s", contracts.ErrAssetNotFound, assetName, this.repo, version)
}
