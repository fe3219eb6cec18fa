// SPDX-License-Identifier: MIT
package leafset_test

import (
	"testing"

	"github.com/katalvlaran/symta/leafset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterVector_DecUntilUnderflow(t *testing.T) {
	t.Parallel()

	c := leafset.NewCounterVector(3, 2)
	assert.True(t, c.AllPositive())

	c, ok, err := c.Dec(1)
	require.NoError(t, err)
	assert.True(t, ok)
	v, _ := c.Get(1)
	assert.Equal(t, 1, v)
	assert.True(t, c.AllPositive())

	c, ok, err = c.Dec(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, c.AllPositive(), "position 1 has reached zero")

	_, ok, err = c.Dec(1)
	require.NoError(t, err)
	assert.False(t, ok, "decrementing an already-zero counter reports underflow")
}

func TestCounterVector_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	c := leafset.NewCounterVector(2, 1)
	_, err := c.Get(5)
	assert.ErrorIs(t, err, leafset.ErrIndexOutOfRange)

	_, _, err = c.Dec(-1)
	assert.ErrorIs(t, err, leafset.ErrIndexOutOfRange)
}

func TestCounterVector_EqualAndKey(t *testing.T) {
	t.Parallel()

	a := leafset.NewCounterVector(2, 3)
	b := leafset.NewCounterVector(2, 3)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	c, _, _ := a.Dec(0)
	assert.False(t, a.Equal(c))
}
