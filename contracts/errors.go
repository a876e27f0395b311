package contracts

import (
	"errors"
	"fmt"
)

// Every failure in this system is fatal and unrecovered: the first error
// anywhere aborts the run after scoped cleanup. The types below exist so
// the single user-facing message can say which stage failed and why, not
// to support any retry or branching logic.

var (
	ErrAssetNotFound       = errors.New("asset not found in release")
	ErrMissingCredential   = errors.New("an access token is required (pass --token or enter one at the prompt)")
	ErrMissingChecksumFile = errors.New("checksum file not found")
	ErrMalformedChecksum   = errors.New("checksum file contains no digest")
)

type ResolutionFailure int

const (
	BadCredentials ResolutionFailure = iota
	VersionNotFound
	MalformedResponse
)

type ResolutionError struct {
	Repo  RepositoryRef
	Tag   string // empty when resolving latest
	Cause ResolutionFailure
}

func (this *ResolutionError) Error() string {
	switch this.Cause {
	case BadCredentials:
		return fmt.Sprintf("release host rejected the provided credentials for %s", this.Repo)
	case VersionNotFound:
		if this.Tag == "" {
			return fmt.Sprintf("no published release found for %s", this.Repo)
		}
		return fmt.Sprintf("version %q not found in %s", this.Tag, this.Repo)
	default:
		return fmt.Sprintf("malformed release response from %s", this.Repo)
	}
}

type FetchFailure int

const (
	FetchUnauthorized FetchFailure = iota
	FetchNotFound
	FetchEmptyPayload
	FetchOther
)

type FetchError struct {
	Kind        FetchFailure
	Status      int    // transport status, zero for EmptyPayload
	Description string // human-readable name of the transfer
}

func (this *FetchError) Error() string {
	switch this.Kind {
	case FetchUnauthorized:
		return fmt.Sprintf("download of %s unauthorized (status %d): token invalid or insufficient scope", this.Description, this.Status)
	case FetchNotFound:
		return fmt.Sprintf("download of %s failed: asset not found (status %d)", this.Description, this.Status)
	case FetchEmptyPayload:
		return fmt.Sprintf("download of %s produced an empty file", this.Description)
	default:
		return fmt.Sprintf("download of %s failed with status %d", this.Description, this.Status)
	}
}

// MismatchError reports both digests so the operator can tell a
// truncated download from a tampered one at a glance.
type MismatchError struct {
	Expected string
	Actual   string
}

func (this *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, computed %s", this.Expected, this.Actual)
}

type InstallFailure int

const (
	ExtractionFailed InstallFailure = iota
	LayoutMismatch
)

type InstallError struct {
	Kind InstallFailure
	Path string
	Err  error
}

func (this *InstallError) Error() string {
	if this.Kind == LayoutMismatch {
		return fmt.Sprintf("archive extracted but expected directory %q is absent: the archive's internal layout has changed", this.Path)
	}
	return fmt.Sprintf("extraction of %q failed: %v", this.Path, this.Err)
}

func (this *InstallError) Unwrap() error {
	return this.Err
}

// HostStatusError is how the release-host adapter reports a non-success
// status to core code, which classifies it into the taxonomy above.
type HostStatusError struct {
	Status int
}

func (this *HostStatusError) Error() string {
	return fmt.Sprintf("release host returned status %d", this.Status)
}
