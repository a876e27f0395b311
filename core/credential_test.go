package core

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
	"github.com/smartystreets/gunit"

	"github.com/interlinx/bootstrap/contracts"
)

func TestCredentialSourceFixture(t *testing.T) {
	gunit.Run(new(CredentialSourceFixture), t)
}

type CredentialSourceFixture struct {
	*gunit.Fixture
	prompter *FakePrompter
}

func (this *CredentialSourceFixture) Setup() {
	this.prompter = &FakePrompter{}
}

func (this *CredentialSourceFixture) TestProvidedTokenWinsWithoutPrompting() {
	source := NewCredentialSource("ghp_provided", this.prompter)

	credential, err := source.Acquire()

	this.So(err, should.BeNil)
	this.So(string(credential), should.Equal, "ghp_provided")
	this.So(this.prompter.calls, should.Equal, 0)
}

func (this *CredentialSourceFixture) TestPromptFallbackWhenNoTokenProvided() {
	this.prompter.token = "ghp_prompted"
	source := NewCredentialSource("", this.prompter)

	credential, err := source.Acquire()

	this.So(err, should.BeNil)
	this.So(string(credential), should.Equal, "ghp_prompted")
	this.So(this.prompter.calls, should.Equal, 1)
	this.So(this.prompter.prompt, should.ContainSubstring, "token")
}

func (this *CredentialSourceFixture) TestEmptyPromptResponseRejected() {
	source := NewCredentialSource("", this.prompter)

	credential, err := source.Acquire()

	this.So(credential.Empty(), should.BeTrue)
	this.So(errors.Is(err, contracts.ErrMissingCredential), should.BeTrue)
}

func (this *CredentialSourceFixture) TestPromptErrorPassedThrough() {
	this.prompter.err = errors.New("no controlling terminal")
	source := NewCredentialSource("", this.prompter)

	_, err := source.Acquire()

	this.So(err, should.NotBeNil)
	this.So(errors.Is(err, contracts.ErrMissingCredential), should.BeFalse)
}

func (this *CredentialSourceFixture) TestWipeZeroesMemory() {
	credential := contracts.Credential("ghp_secret")
	raw := []byte(credential)

	credential.Wipe()

	for _, value := range raw {
		this.So(value, should.Equal, 0)
	}
}

type FakePrompter struct {
	token  string
	err    error
	prompt string
	calls  int
}

func (this *FakePrompter) ReadToken(prompt string) (string, error) {
	this.calls++
	this.prompt = prompt
	return this.token, this.err
}
