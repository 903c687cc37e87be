// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/cfnav/cfnav/internal/config"
)

var noInputFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:  "no-input",
	Usage: "fail instead of prompting (for scripts)",
	Value: false,
}

// NewProfileFlag constructs the --profile flag. Falls back to the CFNAV_PROFILE
// env variable and the "profile" config key, then to the SDK's own chain.
func NewProfileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "AWS profile to use. Overrides the environment",
		Sources: configChain("profile", cli.EnvVar("CFNAV_PROFILE")),
	}
}

// NewMatchFlag constructs the --match flag. When absent, the current git
// branch seeds the pattern prompt.
func NewMatchFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "match",
		Aliases: []string{"m"},
		Usage:   "case-insensitive pattern to match stack names against",
	}
}

// NewRegionFlag constructs the --region flag with the AWS_REGION env variable
// and the "region" config key as fallbacks.
func NewRegionFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "region",
		Usage:   "AWS region for API calls and console links",
		Sources: configChain("region", cli.EnvVar("AWS_REGION")),
		Value:   config.DefaultRegion,
	}
}

// configChain builds a value source chain of the given env sources plus the
// YAML config file when one exists.
func configChain(key string, sources ...cli.ValueSource) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(sources...)
	if path := config.FilePath(); path != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(path)))
	}
	return chain
}
