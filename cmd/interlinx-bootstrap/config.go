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

var (
	controllerRepo = contracts.RepositoryRef{Owner: "interlinx", Name: "interlinx-controller"}
	agentRepo      = contracts.RepositoryRef{Owner: "interlinx", Name: "interlinx-agent"}
)

type Config struct {
	Token             string
	ControllerVersion string
	AgentVersion      string
	APIBase           string
}

func parseConfig(args []string, environment contracts.Environment, stderr io.Writer) (config Config, err error) {
	var deprecatedVersion string

	flags := flag.NewFlagSet("interlinx-bootstrap", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&config.Token,
		"token",
		"",
		"GitHub access token. When omitted, the token is read from the controlling terminal.",
	)
	flags.StringVar(&config.ControllerVersion,
		"controller-version",
		"",
		"Controller version tag to install. When omitted, the latest published release is used.",
	)
	flags.StringVar(&config.AgentVersion,
		"agent-version",
		"",
		"Agent version tag to fetch. When omitted, the latest published release is used.",
	)
	flags.StringVar(&deprecatedVersion,
		"version",
		"",
		"Deprecated alias for -controller-version.",
	)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage of interlinx-bootstrap:")
		flags.PrintDefaults()
		_, _ = fmt.Fprintln(stderr, `
Installs the interlinx controller archive under `+installRoot+` and then
fetches the agent executable into the working directory. A controller
failure aborts the run before the agent sequence begins.

exit code 0: success
exit code 1: failure (see stderr for details)`)
	}
	err = flags.Parse(args)
	if err != nil {
		return Config{}, err
	}

	if deprecatedVersion != "" {
		if config.ControllerVersion == "" {
			config.ControllerVersion = deprecatedVersion
		}
		_, _ = fmt.Fprintln(stderr, "warning: -version is deprecated, use -controller-version")
	}

	config.APIBase = shell.DefaultAPIBase
	if base, set := environment.LookupEnv("INTERLINX_API_BASE"); set && strings.TrimSpace(base) != "" {
		config.APIBase = strings.TrimRight(strings.TrimSpace(base), "/")
	}
	return config, nil
}
