// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package stackset

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfnav/cfnav/internal/model"
)

func stacks(names ...string) []model.Stack {
	out := make([]model.Stack, len(names))
	for i, n := range names {
		out[i] = model.Stack{Name: n}
	}
	return out
}

func TestGuardPassthrough(t *testing.T) {
	in := stacks("a", "b", "c")

	got, err := Guard(in, DefaultGuardThreshold, func([]string) ([]int, error) {
		t.Fatal("selector must not run at or below the threshold")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestGuardNarrowsOversizedSet(t *testing.T) {
	in := stacks("s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9")

	// Select out of order; the working set keeps the original relative order.
	got, err := Guard(in, DefaultGuardThreshold, func(names []string) ([]int, error) {
		assert.Len(t, names, 9)
		return []int{7, 0, 3}, nil
	})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, stacks("s1", "s4", "s8"), got)
}

func TestGuardEmptySelection(t *testing.T) {
	in := stacks("s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9")

	got, err := Guard(in, DefaultGuardThreshold, func([]string) ([]int, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGuardSelectorError(t *testing.T) {
	in := stacks("s1", "s2", "s3")
	boom := errors.New("boom")

	_, err := Guard(in, 1, func([]string) ([]int, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

// fakePager serves canned pages per stack, recording cursor order.
type fakePager struct {
	mu    sync.Mutex
	pages map[string][][]model.Resource
	fail  map[string]error
	seen  map[string][]string
}

func (p *fakePager) ListResourcePage(_ context.Context, stackName string, cursor *string) ([]model.Resource, *string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.fail[stackName]; err != nil {
		return nil, nil, err
	}

	idx := 0
	if cursor != nil {
		idx, _ = strconv.Atoi(*cursor)
	}
	if p.seen == nil {
		p.seen = make(map[string][]string)
	}
	cur := "first"
	if cursor != nil {
		cur = *cursor
	}
	p.seen[stackName] = append(p.seen[stackName], cur)

	pages := p.pages[stackName]
	if idx >= len(pages) {
		return nil, nil, nil
	}

	var next *string
	if idx+1 < len(pages) {
		s := strconv.Itoa(idx + 1)
		next = &s
	}
	return pages[idx], next, nil
}

func res(stack string, n int) model.Resource {
	return model.Resource{
		Type:       "AWS::Lambda::Function",
		LogicalID:  fmt.Sprintf("%s-fn-%d", stack, n),
		PhysicalID: fmt.Sprintf("%s-fn-%d", stack, n),
	}
}

func TestAggregateDrainsPagesInOrder(t *testing.T) {
	pager := &fakePager{
		pages: map[string][][]model.Resource{
			"one": {
				{res("one", 1), res("one", 2)},
				{res("one", 3), res("one", 4)},
				{res("one", 5)},
			},
		},
	}

	got, err := Aggregate(context.Background(), pager, stacks("one"))
	require.NoError(t, err)

	require.Len(t, got, 5)
	for i, r := range got {
		assert.Equal(t, fmt.Sprintf("one-fn-%d", i+1), r.LogicalID)
	}
	assert.Equal(t, []string{"first", "1", "2"}, pager.seen["one"])
}

func TestAggregateMergesInWorkingSetOrder(t *testing.T) {
	pager := &fakePager{
		pages: map[string][][]model.Resource{
			"alpha": {{res("alpha", 1)}, {res("alpha", 2)}},
			"beta":  {{res("beta", 1)}},
			"gamma": {{res("gamma", 1), res("gamma", 2)}},
		},
	}

	got, err := Aggregate(context.Background(), pager, stacks("beta", "gamma", "alpha"))
	require.NoError(t, err)

	var ids []string
	for _, r := range got {
		ids = append(ids, r.LogicalID)
	}
	assert.Equal(t, []string{"beta-fn-1", "gamma-fn-1", "gamma-fn-2", "alpha-fn-1", "alpha-fn-2"}, ids)
}

func TestAggregateFailureIsFatal(t *testing.T) {
	boom := errors.New("throttled")
	pager := &fakePager{
		pages: map[string][][]model.Resource{
			"good": {{res("good", 1)}},
		},
		fail: map[string]error{"bad": boom},
	}

	got, err := Aggregate(context.Background(), pager, stacks("good", "bad"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	// Partial results are discarded, not exposed.
	assert.Nil(t, got)
}

func TestAggregateNoStacks(t *testing.T) {
	got, err := Aggregate(context.Background(), &fakePager{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
