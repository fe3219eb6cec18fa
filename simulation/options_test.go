// SPDX-License-Identifier: MIT
package simulation_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_WithContext_CancelledBeforeFirstPass(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := automaton.New(ctx)
	require.NoError(t, a.AddTransition(nil, oneSymbol(assignment.One), leafset.Of(a.AddState())))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulation.Compute(a, simulation.WithContext(cancelled))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_WithMaxIterations_SufficientCapSucceeds(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := automaton.New(ctx)
	p := a.AddState()
	q := a.AddState()
	require.NoError(t, a.SetFinal(q))
	require.NoError(t, a.AddTransition(nil, oneSymbol(assignment.One), leafset.Of(p)))
	require.NoError(t, a.AddTransition(nil, oneSymbol(assignment.Zero), leafset.Of(q)))

	rel, err := simulation.Compute(a, simulation.WithMaxIterations(4))
	require.NoError(t, err)
	assert.True(t, rel.Simulates(p, p))
}

func TestCompute_WithProgress_InvokedAtLeastOnce(t *testing.T) {
	t.Parallel()

	ctx := newCtx()
	a := automaton.New(ctx)
	require.NoError(t, a.AddTransition(nil, oneSymbol(assignment.One), leafset.Of(a.AddState())))

	calls := 0
	_, err := simulation.Compute(a, simulation.WithProgress(func(removed int) { calls++ }))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 1)
}
