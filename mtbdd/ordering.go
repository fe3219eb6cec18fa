// SPDX-License-Identifier: MIT
// Package: symta/mtbdd
//
// ordering.go — ChangeIndex: variable renaming. Variable ordering itself
// is nothing more than "var is a comparable int position" throughout this
// package (spec.md §4.1); ChangeIndex is the one primitive that mutates
// which position a given level of the diagram tests.

package mtbdd

// ChangeIndex returns a new diagram equivalent to root but with every
// occurrence of variable `from` renamed to `to`. Renaming preserves the
// function root denotes as long as `from` and `to` never both occur along
// the same path (spec.md §4.1) — callers renaming into an index already in
// use on some path get a structurally valid but semantically different
// diagram, exactly as in the design this is modeled on; ChangeIndex itself
// does not attempt to detect that case, since detecting it in general
// requires walking every path.
//
// root is borrowed, not consumed.
func (c *Context) ChangeIndex(root Root, from, to int) (Root, error) {
	if root.ctx != c {
		return Root{}, wrapf("ChangeIndex", ErrContextMismatch)
	}
	if from == to {
		return Root{ctx: c, id: c.refAny(root.id)}, nil
	}
	memo := make(map[nodeID]nodeID)
	id := c.changeIndexRec(root.id, from, to, memo)
	return Root{ctx: c, id: id}, nil
}

// changeIndexRec is call-scoped: nothing frees nodes mid-traversal (symta
// is single-threaded and this function issues no Deref of its own besides
// the ones makeNode performs on its own freshly produced inputs), so memo
// entries never need their own pinning reference — unlike the long-lived
// Apply caches in apply.go, which persist across separate top-level calls.
func (c *Context) changeIndexRec(n nodeID, from, to int, memo map[nodeID]nodeID) nodeID {
	if cached, ok := memo[n]; ok {
		return c.refAny(cached)
	}
	if c.isLeaf(n) {
		memo[n] = n
		return c.refAny(n)
	}

	v := c.variable(n)
	if v == from {
		v = to
	}
	lowRes := c.changeIndexRec(c.lowOf(n), from, to, memo)
	highRes := c.changeIndexRec(c.highOf(n), from, to, memo)
	result := c.makeNode(v, lowRes, highRes)
	memo[n] = result
	return result
}
