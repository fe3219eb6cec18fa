// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/builder"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx() *mtbdd.Context {
	return mtbdd.NewContext(mtbdd.WithBackground(leafset.Singleton(automaton.Sink)))
}

func TestBuilder_BuildsLeafAcceptor(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	require.NoError(t, b.AddSymbol("a", 0))
	_, err := b.AddState("q0")
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(nil, "a", "q0"))
	require.NoError(t, b.SetStateFinal("q0"))

	auto := b.Automaton()
	assert.True(t, auto.IsFinal(1))
}

func TestBuilder_AddSymbol_DuplicateErrors(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	require.NoError(t, b.AddSymbol("a", 0))
	err := b.AddSymbol("a", 0)
	assert.ErrorIs(t, err, builder.ErrDuplicateSymbol)
}

func TestBuilder_AddState_DuplicateErrors(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	_, err := b.AddState("q0")
	require.NoError(t, err)
	_, err = b.AddState("q0")
	assert.ErrorIs(t, err, builder.ErrDuplicateState)
}

func TestBuilder_AddSymbol_SpaceExhausted(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	require.NoError(t, b.AddSymbol("zero", 0))
	require.NoError(t, b.AddSymbol("one", 0))
	err := b.AddSymbol("two", 0)
	assert.ErrorIs(t, err, builder.ErrSymbolSpaceExhausted)
}

func TestBuilder_AddTransition_ArityMismatch(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	require.NoError(t, b.AddSymbol("f", 1))
	_, err := b.AddState("q0")
	require.NoError(t, err)

	err = b.AddTransition(nil, "f", "q0")
	assert.ErrorIs(t, err, builder.ErrArityMismatch)
}

func TestBuilder_AddTransition_UnknownSymbol(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	_, err := b.AddState("q0")
	require.NoError(t, err)

	err = b.AddTransition(nil, "missing", "q0")
	assert.ErrorIs(t, err, builder.ErrUnknownSymbol)
}

func TestBuilder_AddTransition_UnknownState(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	require.NoError(t, b.AddSymbol("a", 0))

	err := b.AddTransition(nil, "a", "missing")
	assert.ErrorIs(t, err, builder.ErrUnknownState)
}

func TestBuilder_SetStateInitial_AliasesSetStateFinal(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 1)
	_, err := b.AddState("q0")
	require.NoError(t, err)
	require.NoError(t, b.SetStateInitial("q0"))

	assert.True(t, b.Automaton().IsFinal(1))
}

func TestBuilder_UnaryTransition_ResolvesLHSNames(t *testing.T) {
	t.Parallel()

	b := builder.New(newCtx(), 2)
	require.NoError(t, b.AddSymbol("leaf", 0))
	require.NoError(t, b.AddSymbol("wrap", 1))

	_, err := b.AddState("leaf-state")
	require.NoError(t, err)
	_, err = b.AddState("root")
	require.NoError(t, err)

	require.NoError(t, b.AddTransition(nil, "leaf", "leaf-state"))
	require.NoError(t, b.AddTransition([]string{"leaf-state"}, "wrap", "root"))
	require.NoError(t, b.SetStateFinal("root"))

	assert.True(t, b.Automaton().IsFinal(2))
}
