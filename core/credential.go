package core

import (
	"strings"

	"github.com/interlinx/bootstrap/contracts"
)

// CredentialSource yields the run's single access token: the flag value
// when one was given, otherwise one interactive read from the
// controlling terminal. Empty input is a fatal configuration error.
type CredentialSource struct {
	provided string
	prompter contracts.TokenPrompter
}

func NewCredentialSource(provided string, prompter contracts.TokenPrompter) *CredentialSource {
	return &CredentialSource{provided: provided, prompter: prompter}
}

func (this *CredentialSource) Acquire() (contracts.Credential, error) {
	token := strings.TrimSpace(this.provided)
	if token == "" && this.prompter != nil {
		entered, err := this.prompter.ReadToken("GitHub access token: ")
		if err != nil {
			return nil, err
		}
		token = strings.TrimSpace(entered)
	}
	if token == "" {
		return nil, contracts.ErrMissingCredential
	}
	return contracts.Credential(token), nil
}
