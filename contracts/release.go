package contracts

// Release is the structured form of the host's release document. Only
// the fields this system reads are modeled; absence of the tag field in
// a decoded response is treated as a malformed response, never as an
// empty version.
type Release struct {
	TagName string         `json:"tag_name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// ReleaseAsset is one downloadable file attached to a release. The ID is
// the host's API identifier; private-repository downloads must go
// through the API asset endpoint because the public browser-download
// link does not honor the authorization header.
type ReleaseAsset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// DownloadTarget pairs an asset with a local destination, one per
// transfer. Description feeds error and progress messages.
type DownloadTarget struct {
	Asset       ReleaseAsset
	Destination string
	Description string
}

type ReleaseSource interface {
	LatestRelease(repo RepositoryRef) (Release, error)
	ReleaseByTag(repo RepositoryRef, tag string) (Release, error)
}

type AssetDownloader interface {
	Download(repo RepositoryRef, target DownloadTarget) error
}
