// SPDX-License-Identifier: MIT
package leafset_test

import (
	"testing"

	"github.com/katalvlaran/symta/leafset"
	"github.com/stretchr/testify/assert"
)

func TestOf_SortsAndDedups(t *testing.T) {
	t.Parallel()

	s := leafset.Of(3, 1, 2, 1, 3)
	assert.Equal(t, []int{1, 2, 3}, s.Items())
	assert.Equal(t, 3, s.Len())
}

func TestSet_Equal_IgnoresConstructionOrder(t *testing.T) {
	t.Parallel()

	a := leafset.Of(1, 2, 3)
	b := leafset.Of(3, 2, 1, 2)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestUnion(t *testing.T) {
	t.Parallel()

	a := leafset.Of(1, 2)
	b := leafset.Of(2, 3)
	u := leafset.Union(a, b)
	assert.Equal(t, []int{1, 2, 3}, u.Items())
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	a := leafset.Of(1, 2, 3)
	b := leafset.Of(2, 3, 4)
	i := leafset.Intersect(a, b)
	assert.Equal(t, []int{2, 3}, i.Items())
}

// TestUnionOrAbsorb mirrors spec.md §4.3's leaf-union Apply operator: the
// sink/absent singleton is absorbing, not a normal set member.
func TestUnionOrAbsorb(t *testing.T) {
	t.Parallel()

	sink := 0
	absent := leafset.Singleton(sink)
	p := leafset.Of(1, 2)

	assert.True(t, leafset.UnionOrAbsorb(absent, p, sink).Equal(p))
	assert.True(t, leafset.UnionOrAbsorb(p, absent, sink).Equal(p))

	q := leafset.Of(2, 3)
	combined := leafset.UnionOrAbsorb(p, q, sink)
	assert.Equal(t, []int{1, 2, 3}, combined.Items())

	assert.True(t, leafset.UnionOrAbsorb(absent, absent, sink).IsSingletonOf(sink))
}

func TestSet_Contains(t *testing.T) {
	t.Parallel()

	s := leafset.Of(10, 20, 30)
	assert.True(t, s.Contains(20))
	assert.False(t, s.Contains(25))
}

func TestSet_Strings(t *testing.T) {
	t.Parallel()

	s := leafset.Of("b", "a", "a", "c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Items())
	assert.Equal(t, "{a,b,c}", s.Key())
}

func TestSet_EmptyIsDistinctFromAbsent(t *testing.T) {
	t.Parallel()

	empty := leafset.Of[int]()
	absent := leafset.Singleton(0)
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.Equal(absent))
}
