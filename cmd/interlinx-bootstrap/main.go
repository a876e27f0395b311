package main

import (
	"crypto/sha256"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"runtime"

	"github.com/interlinx/bootstrap/contracts"
	"github.com/interlinx/bootstrap/core"
	"github.com/interlinx/bootstrap/shell"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config, err := parseConfig(os.Args[1:], shell.NewEnvironment(), os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}

	os.Exit(NewBootstrapApp(config).Run())
}

type BootstrapApp struct {
	config   Config
	platform string
}

func NewBootstrapApp(config Config) *BootstrapApp {
	return &BootstrapApp{
		config:   config,
		platform: core.PlatformTag(runtime.GOOS, runtime.GOARCH),
	}
}

// Run executes the controller sequence, then the agent sequence. The
// two artifacts run strictly in order within one invocation; a
// controller failure aborts before any agent activity, and a completed
// controller install is not rolled back when the agent fetch fails.
func (this *BootstrapApp) Run() int {
	if err := core.RequireRoot(installRoot); err != nil {
		log.Println("[ERROR]", err)
		return 1
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Println("[ERROR]", err)
		return 1
	}

	credential, err := core.NewCredentialSource(this.config.Token, shell.NewTerminalPrompt()).Acquire()
	if err != nil {
		log.Println("[ERROR]", err)
		return 1
	}
	defer credential.Wipe()

	tempDir, err := os.MkdirTemp("", "interlinx-bootstrap-")
	if err != nil {
		log.Println("[ERROR]", err)
		return 1
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	controller := this.buildSequence(contracts.Artifact{
		Kind:             contracts.ControllerArtifact,
		Repo:             controllerRepo,
		RequestedVersion: this.config.ControllerVersion,
	}, credential, tempDir, workDir)
	if err := controller.Run(); err != nil {
		log.Println("[ERROR]", err)
		return 1
	}

	agent := this.buildSequence(contracts.Artifact{
		Kind:             contracts.AgentArtifact,
		Repo:             agentRepo,
		RequestedVersion: this.config.AgentVersion,
	}, credential, tempDir, workDir)
	if err := agent.Run(); err != nil {
		log.Println("[ERROR]", err)
		return 1
	}
	return 0
}

func (this *BootstrapApp) buildSequence(
	artifact contracts.Artifact,
	credential contracts.Credential,
	tempDir string,
	workDir string,
) *core.ArtifactSequence {
	client := shell.NewGitHubClient(new(http.Client), this.config.APIBase, credential)
	disk := shell.NewDiskFileSystem()
	return core.NewArtifactSequence(
		artifact,
		core.NewReleaseResolver(client, artifact.Repo),
		core.NewAssetLocator(client, artifact.Repo),
		core.NewFetcher(client, disk),
		core.NewChecksumVerifier(sha256.New, disk),
		core.NewArchiveInstaller(shell.NewTarGzExtractor(), disk),
		disk,
		this.platform,
		tempDir,
		installRoot,
		workDir,
	)
}
