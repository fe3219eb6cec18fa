// SPDX-License-Identifier: MIT
// Package: symta/mtbdd
//
// cube.go — SetValue/GetValue: writing and reading a single (possibly
// ternary) assignment path without disturbing the rest of a diagram.

package mtbdd

import "github.com/katalvlaran/symta/assignment"

// SetValue returns a new diagram in which every concrete completion of
// asgn maps to leaf, and every other assignment maps to whatever root
// already mapped it to — root itself is left untouched (SetValue borrows
// it, per the rest of this package's convention).
func (c *Context) SetValue(root Root, asgn *assignment.Assignment, leaf Leaf) (Root, error) {
	if root.ctx != c {
		return Root{}, wrapf("SetValue", ErrContextMismatch)
	}
	leafID := c.internLeaf(leaf)
	resultID := c.setValueRec(root.id, asgn, 0, leafID)
	c.derefNode(leafID) // the recursion took its own copies via refAny as needed
	return Root{ctx: c, id: resultID}, nil
}

func (c *Context) setValueRec(n nodeID, asgn *assignment.Assignment, pos int, leafID nodeID) nodeID {
	if pos == asgn.Width() {
		return c.refAny(leafID)
	}

	nLow := c.cofactorLow(n, pos)
	nHigh := c.cofactorHigh(n, pos)

	var newLow, newHigh nodeID
	switch asgn.GetI(pos) {
	case assignment.Zero:
		newLow = c.setValueRec(nLow, asgn, pos+1, leafID)
		newHigh = c.refAny(nHigh)
	case assignment.One:
		newLow = c.refAny(nLow)
		newHigh = c.setValueRec(nHigh, asgn, pos+1, leafID)
	default: // Star: both branches are overwritten
		newLow = c.setValueRec(nLow, asgn, pos+1, leafID)
		newHigh = c.setValueRec(nHigh, asgn, pos+1, leafID)
	}
	return c.makeNode(pos, newLow, newHigh)
}

// GetValue returns the unique leaf reached by following asgn from root. If
// asgn contains a Star position whose two branches reach different leaves,
// GetValue fails with ErrMultipleValues (spec.md §4.1's "get_value on an
// under-determined path"). A concrete (Star-free) asgn always succeeds.
func (c *Context) GetValue(root Root, asgn *assignment.Assignment) (Leaf, error) {
	if root.ctx != c {
		return nil, wrapf("GetValue", ErrContextMismatch)
	}
	return c.getValueRec(root.id, asgn, 0)
}

func (c *Context) getValueRec(n nodeID, asgn *assignment.Assignment, pos int) (Leaf, error) {
	if pos == asgn.Width() || c.isLeaf(n) {
		return c.leafOf(n), nil
	}

	switch asgn.GetI(pos) {
	case assignment.Zero:
		return c.getValueRec(c.cofactorLow(n, pos), asgn, pos+1)
	case assignment.One:
		return c.getValueRec(c.cofactorHigh(n, pos), asgn, pos+1)
	default: // Star: both branches must agree
		lv, err := c.getValueRec(c.cofactorLow(n, pos), asgn, pos+1)
		if err != nil {
			return nil, err
		}
		hv, err := c.getValueRec(c.cofactorHigh(n, pos), asgn, pos+1)
		if err != nil {
			return nil, err
		}
		if lv.Key() != hv.Key() {
			return nil, wrapf("GetValue", ErrMultipleValues)
		}
		return lv, nil
	}
}
