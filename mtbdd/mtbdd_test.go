// SPDX-License-Identifier: MIT
package mtbdd_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intLeaf is the simplest possible Leaf: an interned integer, used
// throughout this package's tests in place of a real automaton leaf set.
type intLeaf int

func (l intLeaf) Key() string { return strconv.Itoa(int(l)) }

func sumOp(a, b mtbdd.Leaf) (mtbdd.Leaf, error) {
	return a.(intLeaf) + b.(intLeaf), nil
}

func TestMakeLeaf_Interning(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext()
	a := ctx.MakeLeaf(intLeaf(7))
	b := ctx.MakeLeaf(intLeaf(7))
	c := ctx.MakeLeaf(intLeaf(8))

	assert.Equal(t, a, b, "equal leaf values must yield the same handle")
	assert.NotEqual(t, a, c)

	ctx.Deref(a)
	ctx.Deref(b)
	ctx.Deref(c)
}

func TestSetValueGetValue_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	root := ctx.BackgroundRoot()

	asgn, err := assignment.FromString("0101")
	require.NoError(t, err)

	updated, err := ctx.SetValue(root, asgn, intLeaf(42))
	require.NoError(t, err)
	ctx.Deref(root)

	got, err := ctx.GetValue(updated, asgn)
	require.NoError(t, err)
	assert.Equal(t, intLeaf(42), got)

	other, err := assignment.FromString("0100")
	require.NoError(t, err)
	got2, err := ctx.GetValue(updated, other)
	require.NoError(t, err)
	assert.Equal(t, intLeaf(0), got2, "untouched paths keep the background value")

	ctx.Deref(updated)
}

// TestGetValue_MultipleValues mirrors spec.md §8 scenario 5: a path with a
// Star position whose two branches disagree must fail with ErrMultipleValues,
// while a concrete completion of the same diagram still succeeds.
func TestGetValue_MultipleValues(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	root := ctx.BackgroundRoot()

	a0, err := assignment.FromString("0000")
	require.NoError(t, err)
	root2, err := ctx.SetValue(root, a0, intLeaf(1))
	require.NoError(t, err)
	ctx.Deref(root)

	a1, err := assignment.FromString("0010")
	require.NoError(t, err)
	root3, err := ctx.SetValue(root2, a1, intLeaf(2))
	require.NoError(t, err)
	ctx.Deref(root2)

	star, err := assignment.FromString("00X0")
	require.NoError(t, err)
	_, err = ctx.GetValue(root3, star)
	assert.ErrorIs(t, err, mtbdd.ErrMultipleValues)

	concrete, err := assignment.FromString("0000")
	require.NoError(t, err)
	v, err := ctx.GetValue(root3, concrete)
	require.NoError(t, err)
	assert.Equal(t, intLeaf(1), v)

	ctx.Deref(root3)
}

func TestApply2_Caching(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	a := ctx.MakeLeaf(intLeaf(3))
	b := ctx.MakeLeaf(intLeaf(4))

	sum1, err := ctx.Apply2(a, b, "sum", sumOp)
	require.NoError(t, err)
	sum2, err := ctx.Apply2(a, b, "sum", sumOp)
	require.NoError(t, err)
	assert.Equal(t, sum1, sum2)

	v, err := ctx.GetValue(sum1, assignment.MustNew(0))
	require.NoError(t, err)
	assert.Equal(t, intLeaf(7), v)

	ctx.Deref(a)
	ctx.Deref(b)
	ctx.Deref(sum1)
	ctx.Deref(sum2)
}

// TestClearCache_Transparency is spec.md §8 property 8: clearing the Apply
// cache must never change the result of a subsequent query.
func TestClearCache_Transparency(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	a := ctx.MakeLeaf(intLeaf(3))
	b := ctx.MakeLeaf(intLeaf(4))

	before, err := ctx.Apply2(a, b, "sum", sumOp)
	require.NoError(t, err)
	vBefore, _ := ctx.GetValue(before, assignment.MustNew(0))
	ctx.Deref(before)

	ctx.ClearCache()

	after, err := ctx.Apply2(a, b, "sum", sumOp)
	require.NoError(t, err)
	vAfter, _ := ctx.GetValue(after, assignment.MustNew(0))

	assert.Equal(t, vBefore, vAfter)

	ctx.Deref(a)
	ctx.Deref(b)
	ctx.Deref(after)
}

// TestRefcountInvariant mirrors spec.md §8 scenario 6: after constructing,
// combining, and dropping any sequence of diagrams sharing a Context, once
// every Root handle obtained along the way has been Deref'd exactly once,
// LiveRefs returns to exactly what it was before any of that construction
// started (here, the background leaf's own permanent seed reference).
func TestRefcountInvariant(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	baseline := ctx.LiveRefs()

	root := ctx.BackgroundRoot()
	asgn, _ := assignment.FromString("1100")
	root2, err := ctx.SetValue(root, asgn, intLeaf(9))
	require.NoError(t, err)
	ctx.Deref(root)

	root3 := ctx.Ref(root2) // a second independent owner of the same node
	assert.Greater(t, ctx.LiveRefs(), baseline, "constructing root2 must have grown the live reference count")

	ctx.Deref(root2)
	ctx.Deref(root3)

	assert.Equal(t, baseline, ctx.LiveRefs(), "dropping every handle returns LiveRefs to its starting value")
}

func TestApply1_MapsLeaves(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	root := ctx.BackgroundRoot()
	asgn, _ := assignment.FromString("01")
	updated, err := ctx.SetValue(root, asgn, intLeaf(5))
	require.NoError(t, err)
	ctx.Deref(root)

	doubled, err := ctx.Apply1(updated, "double", func(l mtbdd.Leaf) (mtbdd.Leaf, error) {
		return l.(intLeaf) * 2, nil
	})
	require.NoError(t, err)

	v, err := ctx.GetValue(doubled, asgn)
	require.NoError(t, err)
	assert.Equal(t, intLeaf(10), v)

	ctx.Deref(updated)
	ctx.Deref(doubled)
}

func TestChangeIndex(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	root := ctx.BackgroundRoot()
	asgn, _ := assignment.FromString("10")
	updated, err := ctx.SetValue(root, asgn, intLeaf(1))
	require.NoError(t, err)
	ctx.Deref(root)

	renamed, err := ctx.ChangeIndex(updated, 0, 2)
	require.NoError(t, err)

	renamedAsgn, _ := assignment.FromString("XX")
	// width changed conceptually; just confirm the call succeeds and a
	// concrete probe at the new layout resolves without error for a
	// 2-variable context using a wider assignment is out of scope here —
	// this checks ChangeIndex runs end-to-end without panicking.
	_ = renamedAsgn

	ctx.Deref(updated)
	ctx.Deref(renamed)
}

func TestContextMismatch(t *testing.T) {
	t.Parallel()

	ctx1 := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	ctx2 := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))

	a := ctx1.MakeLeaf(intLeaf(1))
	b := ctx2.MakeLeaf(intLeaf(2))

	_, err := ctx1.Apply2(a, b, "sum", sumOp)
	assert.ErrorIs(t, err, mtbdd.ErrContextMismatch)

	ctx1.Deref(a)
	ctx2.Deref(b)
}

func TestDerefUnmanaged_Panics(t *testing.T) {
	t.Parallel()

	ctx := mtbdd.NewContext(mtbdd.WithBackground(intLeaf(0)))
	a := ctx.MakeLeaf(intLeaf(1))
	ctx.Deref(a)

	assert.Panics(t, func() { ctx.Deref(a) })
}
