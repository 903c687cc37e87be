// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cfnav/cfnav/internal/command"
	"github.com/cfnav/cfnav/internal/errs"
	"github.com/cfnav/cfnav/internal/log"
	"github.com/cfnav/cfnav/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	app := command.InitApp()

	if err := app.Run(ctx, args); err != nil {
		// A cancelled prompt ends the session, it is not a failure.
		if errors.Is(err, errs.ErrCancelled) {
			log.Debugf("run cancelled by user")
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 1
	}

	return 0
}
