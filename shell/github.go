package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/interlinx/bootstrap/contracts"
)

const DefaultAPIBase = "https://api.github.com"

// GitHubClient consumes the three release-host endpoints this system
// needs: latest release, release by tag, and asset download by id. Asset
// downloads go through the API endpoint with an octet-stream Accept
// header because the public browser-download link does not carry the
// authorization header private repositories require.
type GitHubClient struct {
	client      *http.Client
	baseAddress string
	credential  contracts.Credential
}

func NewGitHubClient(client *http.Client, baseAddress string, credential contracts.Credential) *GitHubClient {
	return &GitHubClient{client: client, baseAddress: baseAddress, credential: credential}
}

func (this *GitHubClient) LatestRelease(repo contracts.RepositoryRef) (contracts.Release, error) {
	address := fmt.Sprintf("%s/repos/%s/releases/latest", this.baseAddress, repo)
	return this.fetchRelease(address)
}

func (this *GitHubClient) ReleaseByTag(repo contracts.RepositoryRef, tag string) (contracts.Release, error) {
	address := fmt.Sprintf("%s/repos/%s/releases/tags/%s", this.baseAddress, repo, tag)
	return this.fetchRelease(address)
}

func (this *GitHubClient) fetchRelease(address string) (contracts.Release, error) {
	request, err := http.NewRequest(http.MethodGet, address, nil)
	if err != nil {
		return contracts.Release{}, err
	}
	request.Header.Set("Accept", "application/vnd.github+json")
	this.authorize(request)

	response, err := this.client.Do(request)
	if err != nil {
		return contracts.Release{}, err
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		return contracts.Release{}, &contracts.HostStatusError{Status: response.StatusCode}
	}

	var release contracts.Release
	if err := json.NewDecoder(response.Body).Decode(&release); err != nil {
		return contracts.Release{}, fmt.Errorf("decoding release response: %w", err)
	}
	return release, nil
}

func (this *GitHubClient) Download(repo contracts.RepositoryRef, target contracts.DownloadTarget) error {
	address := fmt.Sprintf("%s/repos/%s/releases/assets/%d", this.baseAddress, repo, target.Asset.ID)
	request, err := http.NewRequest(http.MethodGet, address, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/octet-stream")
	this.authorize(request)

	response, err := this.client.Do(request)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", target.Description, err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := classifyDownloadStatus(response.StatusCode, target.Description); err != nil {
		return err
	}
	return writeBody(response.Body, target.Destination)
}

func (this *GitHubClient) authorize(request *http.Request) {
	if !this.credential.Empty() {
		request.Header.Set("Authorization", "token "+string(this.credential))
	}
}

func classifyDownloadStatus(status int, description string) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &contracts.FetchError{Kind: contracts.FetchUnauthorized, Status: status, Description: description}
	case status == http.StatusNotFound:
		return &contracts.FetchError{Kind: contracts.FetchNotFound, Status: status, Description: description}
	default:
		return &contracts.FetchError{Kind: contracts.FetchOther, Status: status, Description: description}
	}
}

func writeBody(body io.Reader, destination string) error {
	if err := os.MkdirAll(filepath.Dir(destination), 0755); err != nil {
		return err
	}
	file, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if _, err := io.Copy(file, body); err != nil {
		return fmt.Errorf("writing %s: %w", destination, err)
	}
	return nil
}
