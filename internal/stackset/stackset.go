// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package stackset

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/cfnav/cfnav/internal/log"
	"github.com/cfnav/cfnav/internal/model"
)

// DefaultGuardThreshold caps how many stacks pass the cardinality guard
// without a narrowing prompt. Around this many stacks the downstream
// resource listing stops being useful in one interactive session. Policy
// knob, overridable via the guard.threshold config key.
const DefaultGuardThreshold = 8

// Selector prompts the user to pick a subset of the given stack names,
// returning the picked indices. It reports cancellation via errs.ErrCancelled.
type Selector func(names []string) ([]int, error)

// ResourcePager fetches one page of a stack's resource listing. A nil cursor
// requests the first page; a nil returned cursor means the listing is done.
type ResourcePager interface {
	ListResourcePage(ctx context.Context, stackName string, cursor *string) ([]model.Resource, *string, error)
}

// Guard narrows an oversized working set. At or below threshold the matched
// stacks pass through unchanged. Above it the user multi-selects; the result
// keeps the original relative order. An empty selection yields an empty
// working set, which the caller treats as "no resources", not as an error.
func Guard(matched []model.Stack, threshold int, sel Selector) ([]model.Stack, error) {
	if len(matched) <= threshold {
		return matched, nil
	}

	log.Debugf("cardinality guard triggered: matched=%d, threshold=%d", len(matched), threshold)

	names := make([]string, len(matched))
	for i, s := range matched {
		names[i] = s.Name
	}

	picked, err := sel(names)
	if err != nil {
		return nil, err
	}

	sort.Ints(picked)
	out := make([]model.Stack, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(matched) {
			out = append(out, matched[idx])
		}
	}
	return out, nil
}

// Aggregate drains every stack's resource listing and concatenates the
// results in working-set order. Per-stack drains run concurrently, but pages
// within a stack are fetched strictly in cursor order and nothing is merged
// until every drain has finished. Any single listing failure fails the whole
// run; partial results are discarded.
func Aggregate(ctx context.Context, pager ResourcePager, stacks []model.Stack) ([]model.Resource, error) {
	perStack := make([][]model.Resource, len(stacks))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range stacks {
		g.Go(func() error {
			resources, err := drain(ctx, pager, s.Name)
			if err != nil {
				return err
			}
			perStack[i] = resources
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.Resource
	for i, resources := range perStack {
		log.Debugf("stack drained: stack=%s, resources=%d", stacks[i].Name, len(resources))
		merged = append(merged, resources...)
	}
	return merged, nil
}

// drain walks one stack's listing to exhaustion, preserving page order.
func drain(ctx context.Context, pager ResourcePager, stackName string) ([]model.Resource, error) {
	var all []model.Resource
	var cursor *string
	for {
		page, next, err := pager.ListResourcePage(ctx, stackName, cursor)
		if err != nil {
			return nil, fmt.Errorf("draining stack %s: %w", stackName, err)
		}
		all = append(all, page...)
		if next == nil {
			return all, nil
		}
		cursor = next
	}
}
