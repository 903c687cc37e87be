// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package fuzzy backs the picker's autocomplete with approximate string
// matching. The scoring algorithm itself is sahilm/fuzzy, used as a black
// box; this package only applies the threshold and ordering policy.
package fuzzy

import "github.com/sahilm/fuzzy"

// minScore is the fixed similarity floor. sahilm/fuzzy scores penalize
// scattered matches below zero, so this cuts barely-related labels while
// keeping substring and initialism hits.
const minScore = 0

// Suggest returns the indices of the labels matching input, best match
// first. Indices keep duplicate labels apart. An empty input returns every
// index in order, and an empty label list returns empty without error.
func Suggest(input string, labels []string) []int {
	if input == "" {
		out := make([]int, len(labels))
		for i := range labels {
			out[i] = i
		}
		return out
	}

	matches := fuzzy.Find(input, labels)

	var out []int
	for _, m := range matches {
		if m.Score >= minScore {
			out = append(out, m.Index)
		}
	}
	return out
}
