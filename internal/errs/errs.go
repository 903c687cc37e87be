// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package errs defines the sentinel errors shared across stages. Components
// return these; only main decides exit codes.
package errs

import "errors"

// ErrCancelled is returned when the user backs out of a prompt. It maps to
// exit code 0, everything else here maps to 1.
var ErrCancelled = errors.New("cancelled")

// ErrNoStacks is returned when the account/region has no stacks at all.
var ErrNoStacks = errors.New("no CloudFormation stacks found")

// ErrNoMatchingStacks is returned when the pattern matched nothing.
var ErrNoMatchingStacks = errors.New("no stacks matched the pattern")

// ErrNoResources is returned when the working set yields no navigable
// resources. An empty cardinality-guard selection lands here too.
var ErrNoResources = errors.New("no navigable resources found")

// ErrNoPattern is returned when no match pattern was supplied and none could
// be derived from the current git branch.
var ErrNoPattern = errors.New("no match pattern supplied and no git branch detected")

// ErrNoTerminal is returned when a prompt is required but stdin is not an
// interactive terminal (or --no-input was given).
var ErrNoTerminal = errors.New("interactive prompt required but input is not a terminal")
