// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

// InitApp builds the root CLI command. cfnav is single-purpose, so the root
// action is the whole orchestration.
func InitApp() *cli.Command {
	app := &cli.Command{
		Name:      "cfnav",
		Usage:     "jump to the AWS console page of a stack resource",
		UsageText: "cfnav [options]",
		Flags: []cli.Flag{
			NewProfileFlag(),
			NewMatchFlag(),
			NewRegionFlag(),
			noInputFlag,
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cfnav version info",
				HideDefault: true,
			},
		},
		Action: navigateAction,
	}

	// Make sure flags are sorted for the --help text.
	slices.SortFunc(app.Flags, func(a, b cli.Flag) int {
		return strings.Compare(a.Names()[0], b.Names()[0])
	})

	return app
}
