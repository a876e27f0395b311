package contracts

// Credential is the process-lifetime access token. It is the only
// resource requiring guaranteed cleanup: callers defer Wipe on every
// exit path.
type Credential []byte

func (this Credential) Empty() bool {
	return len(this) == 0
}

// Wipe overwrites the backing array and truncates the slice. Copies made
// while building request headers are out of reach, but the long-lived
// value itself never outlives the run.
func (this *Credential) Wipe() {
	for i := range *this {
		(*this)[i] = 0
	}
	*this = (*this)[:0]
}

// TokenPrompter reads a token from the controlling terminal, even when
// the process's own stdin is a pipe.
type TokenPrompter interface {
	ReadToken(prompt string) (string, error)
}
