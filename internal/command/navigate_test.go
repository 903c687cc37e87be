// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfnav/cfnav/internal/config"
	"github.com/cfnav/cfnav/internal/match"
)

func TestInvalidPatternFailsBeforeClientConstruction(t *testing.T) {
	calls := 0
	orig := newStackClient
	newStackClient = func(ctx context.Context, run config.Run) (stackClient, error) {
		calls++
		return nil, errors.New("should not be reached")
	}
	t.Cleanup(func() { newStackClient = orig })

	err := InitApp().Run(context.Background(), []string{"cfnav", "--no-input", "-m", "feature-(42"})

	require.Error(t, err)
	var ipe *match.InvalidPatternError
	assert.ErrorAs(t, err, &ipe)
	// A bad pattern must fail before any AWS setup happens.
	assert.Equal(t, 0, calls)
}
