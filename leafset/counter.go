// SPDX-License-Identifier: MIT
// Package: symta/leafset
//
// counter.go — CounterVector: the leaf type simulation's greatest-fixpoint
// refinement attaches to each pair of equal-arity LHS vectors (spec.md
// §4.7): one non-negative counter per position, counting how many of the
// candidate successors still simulate the corresponding required
// successor. A counter reaching zero (an attempted decrement past zero)
// signals that the pair it belongs to must be removed from the preorder.

package leafset

import (
	"fmt"
	"strings"
)

// CounterVector is a fixed-length vector of non-negative counters. The
// zero value is a length-0 vector.
type CounterVector struct {
	counts []int
}

// NewCounterVector builds a CounterVector of the given length, every
// position initialised to init.
func NewCounterVector(length, init int) CounterVector {
	counts := make([]int, length)
	for i := range counts {
		counts[i] = init
	}
	return CounterVector{counts: counts}
}

// Len returns the number of positions in c.
func (c CounterVector) Len() int {
	return len(c.counts)
}

func (c CounterVector) checkIndex(i int) error {
	if i < 0 || i >= len(c.counts) {
		return fmt.Errorf("CounterVector index %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// Get returns the counter at position i.
func (c CounterVector) Get(i int) (int, error) {
	if err := c.checkIndex(i); err != nil {
		return 0, err
	}
	return c.counts[i], nil
}

// Dec returns a copy of c with position i decremented by one. ok is false,
// and the returned vector is c unchanged, if the counter at i is already
// zero — the caller (simulation's refinement loop) treats that as the
// signal to remove the pair this vector belongs to.
func (c CounterVector) Dec(i int) (result CounterVector, ok bool, err error) {
	if err := c.checkIndex(i); err != nil {
		return c, false, err
	}
	if c.counts[i] == 0 {
		return c, false, nil
	}
	cp := append([]int(nil), c.counts...)
	cp[i]--
	return CounterVector{counts: cp}, true, nil
}

// AllPositive reports whether every position still holds a strictly
// positive counter — the pair this vector belongs to remains in the
// simulation preorder exactly as long as this holds.
func (c CounterVector) AllPositive() bool {
	for _, v := range c.counts {
		if v <= 0 {
			return false
		}
	}
	return true
}

// Equal reports whether c and other have identical counters.
func (c CounterVector) Equal(other CounterVector) bool {
	if len(c.counts) != len(other.counts) {
		return false
	}
	for i, v := range c.counts {
		if other.counts[i] != v {
			return false
		}
	}
	return true
}

// Key renders c as a canonical string, satisfying mtbdd.Leaf so a
// CounterVector can be interned and carried directly as an MTBDD leaf.
func (c CounterVector) Key() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range c.counts {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')
	return b.String()
}
