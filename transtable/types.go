// SPDX-License-Identifier: MIT
// Package: symta/transtable

package transtable

import (
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
)

// State is an opaque non-negative state identifier. State 0 is the
// distinguished sink state ("no successor"), never user-visible as a
// state a caller explicitly allocated.
type State uint32

// Sink is the distinguished state denoting "no transition". It is never
// returned by automaton.AddState.
const Sink State = 0

// Leaf is the MTBDD leaf type a Table's roots carry: an ordered,
// duplicate-free set of successor states. {Sink} is the canonical
// encoding of "absent" (spec.md's resolved Open Question 3).
type Leaf = leafset.Set[State]

// arityNBucket stores arity-k (k >= 3) entries: a hash map keyed by the
// encoded LHS vector, plus an explicit insertion-order key list so
// iteration is reproducible regardless of Go's randomized map order.
type arityNBucket struct {
	order    []string
	byKey    map[string]mtbdd.Root
	lhsByKey map[string][]State
}

// Table is the arity-specialised LHS -> Root transition table (spec.md
// §4.3). The zero value is not usable; construct with New.
type Table struct {
	ctx *mtbdd.Context

	arity0 mtbdd.Root // always set; BackgroundRoot() until first arity-0 rule

	arity1 []mtbdd.Root // arity1[s] is the root for LHS [s]; grown lazily

	arity2 [][]mtbdd.Root // arity2[s1][s2] is the root for LHS [s1, s2]

	arityN map[int]*arityNBucket // keyed by arity (>= 3)
}

// New creates an empty Table bound to ctx. Every LHS starts out routed to
// ctx's background root (the bottom root, per spec.md's "absent entry is
// the bottom root" convention).
func New(ctx *mtbdd.Context) *Table {
	return &Table{
		ctx:    ctx,
		arity0: ctx.BackgroundRoot(),
		arityN: make(map[int]*arityNBucket),
	}
}

// Context returns the MTBDD context this Table is bound to.
func (t *Table) Context() *mtbdd.Context {
	return t.ctx
}
