// SPDX-License-Identifier: MIT
// Package: symta/mtbdd
//
// apply.go — Apply1/Apply2/Apply3: the generic traversal primitives every
// higher-level algorithm (leaf-set union, product intersection, BU→TD
// conversion, the simulation lift check) is built from. Every private recursive helper
// borrows its node inputs (never consumes their references) and returns
// one freshly owned reference; the public Apply* wrappers borrow the
// caller's Root the same way, so a or b is never invalidated by calling
// Apply on it.
//
// Cache discipline: each of the three caches pins its stored result with
// one extra reference at insertion time (so a cached node can never be
// freed while a hit is still possible) and returns the caller their own
// fresh reference via refAny on every hit. ClearCache releases exactly
// those pinning references.

package mtbdd

// Apply2 is the binary Apply: for every assignment, the result leaf is
// op(leaf of a, leaf of b). Results are cached by (a, b, opID); equal
// operand pairs and operator ids always produce the same cached Root.
func (c *Context) Apply2(a, b Root, opID string, op BinaryOp) (Root, error) {
	if a.ctx != c || b.ctx != c {
		return Root{}, wrapf("Apply2", ErrContextMismatch)
	}
	id, err := c.apply2rec(a.id, b.id, opID, op)
	if err != nil {
		return Root{}, err
	}
	return Root{ctx: c, id: id}, nil
}

func (c *Context) apply2rec(a, b nodeID, opID string, op BinaryOp) (nodeID, error) {
	key := apply2Key{a, b, opID}
	if id, ok := c.apply2Cache[key]; ok {
		return c.refAny(id), nil
	}

	var result nodeID
	if c.isLeaf(a) && c.isLeaf(b) {
		leaf, err := op(c.leafOf(a), c.leafOf(b))
		if err != nil {
			return nilNode, err
		}
		result = c.internLeaf(leaf)
	} else {
		v := minInt(c.variable(a), c.variable(b))
		aLow, aHigh := c.cofactorLow(a, v), c.cofactorHigh(a, v)
		bLow, bHigh := c.cofactorLow(b, v), c.cofactorHigh(b, v)

		lowRes, err := c.apply2rec(aLow, bLow, opID, op)
		if err != nil {
			return nilNode, err
		}
		highRes, err := c.apply2rec(aHigh, bHigh, opID, op)
		if err != nil {
			c.derefNode(lowRes)
			return nilNode, err
		}
		result = c.makeNode(v, lowRes, highRes)
	}

	if c.tracer != nil {
		c.tracer.OnApply(opID, len(c.apply2Cache))
	}
	c.apply2Cache[key] = c.refAny(result) // pin for future hits
	return result, nil
}

// Apply3 is Apply2's three-operand counterpart: for every assignment, the
// result leaf is op(leaf of a, leaf of b, leaf of d), with the three
// diagrams traversed in lock-step and results cached by (a, b, d, opID).
func (c *Context) Apply3(a, b, d Root, opID string, op TernaryOp) (Root, error) {
	if a.ctx != c || b.ctx != c || d.ctx != c {
		return Root{}, wrapf("Apply3", ErrContextMismatch)
	}
	id, err := c.apply3rec(a.id, b.id, d.id, opID, op)
	if err != nil {
		return Root{}, err
	}
	return Root{ctx: c, id: id}, nil
}

func (c *Context) apply3rec(a, b, d nodeID, opID string, op TernaryOp) (nodeID, error) {
	key := apply3Key{a, b, d, opID}
	if id, ok := c.apply3Cache[key]; ok {
		return c.refAny(id), nil
	}

	var result nodeID
	if c.isLeaf(a) && c.isLeaf(b) && c.isLeaf(d) {
		leaf, err := op(c.leafOf(a), c.leafOf(b), c.leafOf(d))
		if err != nil {
			return nilNode, err
		}
		result = c.internLeaf(leaf)
	} else {
		v := minInt(minInt(c.variable(a), c.variable(b)), c.variable(d))
		aLow, aHigh := c.cofactorLow(a, v), c.cofactorHigh(a, v)
		bLow, bHigh := c.cofactorLow(b, v), c.cofactorHigh(b, v)
		dLow, dHigh := c.cofactorLow(d, v), c.cofactorHigh(d, v)

		lowRes, err := c.apply3rec(aLow, bLow, dLow, opID, op)
		if err != nil {
			return nilNode, err
		}
		highRes, err := c.apply3rec(aHigh, bHigh, dHigh, opID, op)
		if err != nil {
			c.derefNode(lowRes)
			return nilNode, err
		}
		result = c.makeNode(v, lowRes, highRes)
	}

	if c.tracer != nil {
		c.tracer.OnApply(opID, len(c.apply3Cache))
	}
	c.apply3Cache[key] = c.refAny(result)
	return result, nil
}

// Apply1 is the monadic Apply: it maps every leaf of a through op,
// preserving (and re-reducing) structure. Used for side-effectful or
// transforming single-diagram traversals.
func (c *Context) Apply1(a Root, opID string, op UnaryOp) (Root, error) {
	if a.ctx != c {
		return Root{}, wrapf("Apply1", ErrContextMismatch)
	}
	id, err := c.apply1rec(a.id, opID, op)
	if err != nil {
		return Root{}, err
	}
	return Root{ctx: c, id: id}, nil
}

func (c *Context) apply1rec(a nodeID, opID string, op UnaryOp) (nodeID, error) {
	key := apply1Key{a, opID}
	if id, ok := c.apply1Cache[key]; ok {
		return c.refAny(id), nil
	}

	var result nodeID
	if c.isLeaf(a) {
		leaf, err := op(c.leafOf(a))
		if err != nil {
			return nilNode, err
		}
		result = c.internLeaf(leaf)
	} else {
		v := c.variable(a)
		lowRes, err := c.apply1rec(c.lowOf(a), opID, op)
		if err != nil {
			return nilNode, err
		}
		highRes, err := c.apply1rec(c.highOf(a), opID, op)
		if err != nil {
			c.derefNode(lowRes)
			return nilNode, err
		}
		result = c.makeNode(v, lowRes, highRes)
	}

	if c.tracer != nil {
		c.tracer.OnApply(opID, len(c.apply1Cache))
	}
	c.apply1Cache[key] = c.refAny(result)
	return result, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
