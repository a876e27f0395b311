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

	os.Exit(NewInstallApp(config).Run())
}

type InstallApp struct {
	config Config
}

func NewInstallApp(config Config) *InstallApp {
	return &InstallApp{config: config}
}

func (this *InstallApp) Run() int {
	if err := core.RequireRoot(installRoot); err != nil {
		log.Println("[ERROR]", err)
		return 1
	}

	credential, err := core.NewCredentialSource(this.config.Token, shell.NewTerminalPrompt()).Acquire()
	if err != nil {
		log.Println("[ERROR]", err)
		return 1
	}
	defer credential.Wipe()

	tempDir, err := os.MkdirTemp("", "interlinx-install-")
	if err != nil {
		log.Println("[ERROR]", err)
		return 1
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	sequence := this.buildControllerSequence(credential, tempDir)
	if err := sequence.Run(); err != nil {
		log.Println("[ERROR]", err)
		return 1
	}
	return 0
}

func (this *InstallApp) buildControllerSequence(credential contracts.Credential, tempDir string) *core.ArtifactSequence {
	client := shell.NewGitHubClient(new(http.Client), this.config.APIBase, credential)
	disk := shell.NewDiskFileSystem()
	artifact := contracts.Artifact{
		Kind:             contracts.ControllerArtifact,
		Repo:             controllerRepo,
		RequestedVersion: this.config.Version,
	}
	return core.NewArtifactSequence(
		artifact,
		core.NewReleaseResolver(client, controllerRepo),
		core.NewAssetLocator(client, controllerRepo),
		core.NewFetcher(client, disk),
		core.NewChecksumVerifier(sha256.New, disk),
		core.NewArchiveInstaller(shell.NewTarGzExtractor(), disk),
		disk,
		core.PlatformTag(runtime.GOOS, runtime.GOARCH),
		tempDir,
		installRoot,
		"",
	)
}
