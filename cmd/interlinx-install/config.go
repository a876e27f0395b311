package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/interlinx/bootstrap/contracts"
	"github.com/interlinx/bootstrap/shell"
)

const installRoot = "/opt"

var controllerRepo = contracts.RepositoryRef{Owner: "interlinx", Name: "interlinx-controller"}

type Config struct {
	Token   string
	Version string
	APIBase string
}

func parseConfig(args []string, environment contracts.Environment, stderr io.Writer) (config Config, err error) {
	flags := flag.NewFlagSet("interlinx-install", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&config.Token,
		"token",
		"",
		"GitHub access token. When omitted, the token is read from the controlling terminal.",
	)
	flags.StringVar(&config.Version,
		"version",
		"",
		"Controller version tag to install. When omitted, the latest published release is used.",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage of interlinx-install:")
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(stderr, `
Downloads the interlinx controller release archive, verifies its
checksum, and expands it under `+installRoot+`.

exit code 0: success
exit code 1: failure (see stderr for details)`)
	}
	err = flags.Parse(args)
	if err != nil {
		return Config{}, err
	}

	config.APIBase = shell.DefaultAPIBase
	if base, set := environment.LookupEnv("INTERLINX_API_BASE"); set && strings.TrimSpace(base) != "" {
		config.APIBase = strings.TrimRight(strings.TrimSpace(base), "/")
	}
	return config, nil
}
