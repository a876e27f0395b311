package core

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/interlinx/bootstrap/contracts"
)

type VerifierFileSystem interface {
	contracts.FileReader
	contracts.FileOpener
}

// ChecksumVerifier recomputes a payload's digest and compares it against
// the first whitespace-delimited token of the checksum file. Comparison
// is exact string equality with no case normalization.
type ChecksumVerifier struct {
	hasher     func() hash.Hash
	fileSystem VerifierFileSystem
}

func NewChecksumVerifier(hasher func() hash.Hash, fileSystem VerifierFileSystem) *ChecksumVerifier {
	return &ChecksumVerifier{hasher: hasher, fileSystem: fileSystem}
}

func (this *ChecksumVerifier) Verify(payloadPath, checksumPath string) error {
	expected, err := this.readExpectedDigest(checksumPath)
	if err != nil {
		return err
	}
	actual, err := this.computeDigest(payloadPath)
	if err != nil {
		return err
	}
	if expected != actual {
		return &contracts.MismatchError{Expected: expected, Actual: actual}
	}
	return nil
}

func (this *ChecksumVerifier) readExpectedDigest(checksumPath string) (string, error) {
	raw, err := this.fileSystem.ReadFile(checksumPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", contracts.ErrMissingChecksumFile, checksumPath)
	}
	if err != nil {
		return "", err
	}
	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: %s", contracts.ErrMalformedChecksum, checksumPath)
	}
	return fields[0], nil
}

func (this *ChecksumVerifier) computeDigest(payloadPath string) (string, error) {
	reader, err := this.fileSystem.Open(payloadPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = reader.Close() }()

	hasher := this.hasher()
	if _, err := io.Copy(hasher, reader); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
