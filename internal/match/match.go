// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package match filters stacks by a case-insensitive regular expression.
// This is exact regex matching; the fuzzy search in the picker is a separate
// concern and the two must not be conflated.
package match

import (
	"fmt"
	"regexp"

	"github.com/cfnav/cfnav/internal/model"
)

// InvalidPatternError reports a match pattern that does not compile as a
// regular expression. It is an input error, surfaced before any network call.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid match pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Matcher is a compiled, case-insensitive stack name pattern.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher from the user-supplied pattern. The pattern is
// unanchored and matches anywhere in the stack name.
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return &Matcher{re: re}, nil
}

// Filter retains the stacks whose name contains a match, preserving input
// order. Zero matches is a valid result, not an error; the caller decides
// what that means.
func (m *Matcher) Filter(stacks []model.Stack) []model.Stack {
	var out []model.Stack
	for _, s := range stacks {
		if m.re.MatchString(s.Name) {
			out = append(out, s)
		}
	}
	return out
}
