package core

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/interlinx/bootstrap/contracts"
)

// ReleaseResolver turns an optional requested tag into the concrete tag
// the rest of the artifact's sequence derives every name from.
type ReleaseResolver struct {
	source contracts.ReleaseSource
	repo   contracts.RepositoryRef
}

func NewReleaseResolver(source contracts.ReleaseSource, repo contracts.RepositoryRef) *ReleaseResolver {
	return &ReleaseResolver{source: source, repo: repo}
}

// Resolve returns the repository's latest published tag when requested
// is empty, and otherwise confirms the requested tag exists and returns
// it unchanged.
func (this *ReleaseResolver) Resolve(requested string) (string, error) {
	if requested == "" {
		return this.resolveLatest()
	}
	return this.confirmRequested(requested)
}

func (this *ReleaseResolver) resolveLatest() (string, error) {
	release, err := this.source.LatestRelease(this.repo)
	if err != nil {
		return "", this.classify(err, "")
	}
	if release.TagName == "" {
		return "", &contracts.ResolutionError{Repo: this.repo, Cause: contracts.MalformedResponse}
	}
	return release.TagName, nil
}

func (this *ReleaseResolver) confirmRequested(requested string) (string, error) {
	_, err := this.source.ReleaseByTag(this.repo, requested)
	if err != nil {
		return "", this.classify(err, requested)
	}
	return requested, nil
}

func (this *ReleaseResolver) classify(err error, tag string) error {
	var status *contracts.HostStatusError
	if !errors.As(err, &status) {
		return fmt.Errorf("resolving version for %s: %w", this.repo, err)
	}
	switch status.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &contracts.ResolutionError{Repo: this.repo, Tag: tag, Cause: contracts.BadCredentials}
	case http.StatusNotFound:
		return &contracts.ResolutionError{Repo: this.repo, Tag: tag, Cause: contracts.VersionNotFound}
	default:
		return &contracts.ResolutionError{Repo: this.repo, Tag: tag, Cause: contracts.MalformedResponse}
	}
}
