// SPDX-License-Identifier: MIT
package inclusion_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/inclusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncluded_WithContext_CancelledBeforeFirstObligation(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := buildLeafAcceptor(t, ctx, assignment.One)
	b := buildLeafAcceptor(t, ctx, assignment.One)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inclusion.Included(a, b, width, inclusion.WithContext(cancelled))
	assert.ErrorIs(t, err, context.Canceled)

	a.Release()
	b.Release()
}

func TestIncluded_WithMaxIterations_SufficientCapSucceeds(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := buildLeafAcceptor(t, ctx, assignment.One)
	b := buildLeafAcceptor(t, ctx, assignment.One)

	ok, err := inclusion.Included(a, b, width, inclusion.WithMaxIterations(4))
	require.NoError(t, err)
	assert.True(t, ok)

	a.Release()
	b.Release()
}

func TestIncluded_WithMaxIterations_InsufficientCapErrors(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := buildTwoBitAcceptor(t, ctx)
	b := buildTwoBitAcceptor(t, ctx)

	_, err := inclusion.Included(a, b, width, inclusion.WithMaxIterations(1))
	assert.ErrorIs(t, err, inclusion.ErrIterationLimit)

	a.Release()
	b.Release()
}

func TestIncluded_WithProgress_InvokedPerObligation(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := buildTwoBitAcceptor(t, ctx)
	b := buildTwoBitAcceptor(t, ctx)

	var discharged []int
	ok, err := inclusion.Included(a, b, width, inclusion.WithProgress(func(n int) {
		discharged = append(discharged, n)
	}))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, discharged)

	a.Release()
	b.Release()
}
