// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package branch supplies the default match pattern from the current git
// branch.
package branch

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/cfnav/cfnav/internal/log"
)

// disallowed strips everything except alphanumerics and whitespace, so a
// branch name like "feature/ABC-42" becomes a safe pattern fragment.
var disallowed = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// DefaultMatch returns the sanitized current branch name, or "" when the
// working directory is not a git checkout (detached HEAD included).
func DefaultMatch(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "git", "branch", "--show-current").Output()
	if err != nil {
		log.Debugf("branch lookup failed: err=%v", err)
		return ""
	}
	return Sanitize(strings.TrimSpace(string(out)))
}

// Sanitize reduces a branch name to alphanumerics and whitespace.
func Sanitize(name string) string {
	return disallowed.ReplaceAllString(name, "")
}
