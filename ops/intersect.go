// SPDX-License-Identifier: MIT
// Package: symta/ops
//
// intersect.go — Intersect (spec.md §4.6): product-state construction
// over a worklist. Seeded from the arity-0 rules via the LeafIntersect
// leaf operator (sink short-circuiting), expanded by dequeuing product
// states and scanning both tables for LHS vectors that agree on that
// product state at some position, translating whichever other positions
// are already known and skipping (for later revisit) whichever are not.

package ops

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/transtable"
)

// productPair is an (a-state, b-state) pair awaiting or undergoing
// translation into a result state.
type productPair struct {
	p, q automaton.State
}

// productBuilder holds the worklist state threaded through the seed and
// expansion phases of Intersect.
type productBuilder struct {
	ctx    *mtbdd.Context
	result *automaton.Automaton
	b      *automaton.Automaton
	ids    map[productPair]automaton.State
	queue  []productPair
	opID   string
}

// intersectSeq numbers Intersect calls, giving each its own opID.
var intersectSeq atomic.Uint64

// idFor returns the result state standing for (p, q), allocating and
// enqueueing a fresh one on first sight. Either operand being the sink
// collapses the product straight to the sink, never allocating or
// enqueueing a state for it (spec.md §4.6 step 1's short-circuit).
func (pb *productBuilder) idFor(p, q automaton.State) automaton.State {
	if p == automaton.Sink || q == automaton.Sink {
		return automaton.Sink
	}
	pair := productPair{p, q}
	if id, ok := pb.ids[pair]; ok {
		return id
	}
	id := pb.result.AddState()
	pb.ids[pair] = id
	pb.queue = append(pb.queue, pair)
	return id
}

// leafIntersect is spec.md §4.6's LeafIntersect: for every (s1, s2) pair
// drawn from the two operand leaves, translate to a product state
// (allocating one if needed), dropping pairs where either side is sink.
// An empty result collapses to the canonical {Sink} absent marker.
//
// Not a pure function of its leaf arguments — it allocates and enqueues
// product states into pb, so every Apply2 call site below must use
// pb.opID (numbered from intersectSeq, hence unique per Intersect call), never
// a bare string constant: the Apply2 cache is keyed by (opID, roots) and
// persists on the shared Context for the Context's whole lifetime, so a
// constant opID would let a second Intersect call in the same Context
// reuse a product-state id allocated by an earlier, unrelated call.
func (pb *productBuilder) leafIntersect(a, b mtbdd.Leaf) (mtbdd.Leaf, error) {
	la, ok := a.(transtable.Leaf)
	if !ok {
		return nil, fmt.Errorf("ops: Intersect: leaf %v is not a transtable.Leaf", a)
	}
	lb, ok := b.(transtable.Leaf)
	if !ok {
		return nil, fmt.Errorf("ops: Intersect: leaf %v is not a transtable.Leaf", b)
	}

	var out []automaton.State
	for _, s1 := range la.Items() {
		for _, s2 := range lb.Items() {
			if s1 == automaton.Sink || s2 == automaton.Sink {
				continue
			}
			out = append(out, pb.idFor(s1, s2))
		}
	}
	if len(out) == 0 {
		return leafset.Singleton(automaton.Sink), nil
	}
	return leafset.Of(out...), nil
}

// translateOthers builds the translated result-LHS for a candidate rule
// pair (uLHS from a, vLHS from b, agreeing on the product state self at
// position skip). ok is false when some other position's product state
// has not yet been materialised — the caller must skip this candidate;
// it will be reconsidered once that state is dequeued (spec.md §4.6's
// stated tie-break).
func translateOthers(uLHS, vLHS []automaton.State, skip int, self automaton.State, ids map[productPair]automaton.State) (out []automaton.State, ok bool) {
	out = make([]automaton.State, len(uLHS))
	for j := range uLHS {
		if j == skip {
			out[j] = self
			continue
		}
		if uLHS[j] == automaton.Sink || vLHS[j] == automaton.Sink {
			out[j] = automaton.Sink
			continue
		}
		id, known := ids[productPair{uLHS[j], vLHS[j]}]
		if !known {
			return nil, false
		}
		out[j] = id
	}
	return out, true
}

// Intersect returns a fresh automaton accepting exactly the intersection
// of the languages a and b accept bottom-up. a and b must share the same
// mtbdd.Context.
func Intersect(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	if a.Context() != b.Context() {
		return nil, fmt.Errorf("ops: Intersect: %w", mtbdd.ErrContextMismatch)
	}
	ctx := a.Context()
	pb := &productBuilder{
		ctx:    ctx,
		result: automaton.New(ctx),
		b:      b,
		ids:    make(map[productPair]automaton.State),
	}
	pb.opID = fmt.Sprintf("ops.intersect-leaf:%d", intersectSeq.Add(1))

	a0 := a.Table().GetRoot(nil)
	b0 := b.Table().GetRoot(nil)
	seedRoot, err := ctx.Apply2(a0, b0, pb.opID, pb.leafIntersect)
	ctx.Deref(a0)
	ctx.Deref(b0)
	if err != nil {
		return nil, err
	}
	if err := mergeEntry(pb.result, nil, seedRoot); err != nil {
		return nil, err
	}

	for len(pb.queue) > 0 {
		pair := pb.queue[0]
		pb.queue = pb.queue[1:]
		self := pb.ids[pair]
		p, q := pair.p, pair.q

		if a.IsFinal(p) && b.IsFinal(q) {
			if err := pb.result.SetFinal(self); err != nil {
				return nil, err
			}
		}

		for entryA := range a.Table().IterateNonBottom() {
			if len(entryA.LHS) == 0 {
				ctx.Deref(entryA.Root)
				continue
			}
			for iPos, s := range entryA.LHS {
				if s != p {
					continue
				}
				if err := pb.expandPosition(entryA, iPos, q, self); err != nil {
					ctx.Deref(entryA.Root)
					return nil, err
				}
			}
			ctx.Deref(entryA.Root)
		}
	}

	return pb.result, nil
}

// expandPosition scans b's table for every LHS vector of entryA's arity
// that agrees with q at iPos, translating and merging each match whose
// other positions are already known.
func (pb *productBuilder) expandPosition(entryA transtable.Entry, iPos int, q, self automaton.State) error {
	for entryB := range pb.b.Table().IterateNonBottom() {
		if len(entryB.LHS) != len(entryA.LHS) || entryB.LHS[iPos] != q {
			pb.ctx.Deref(entryB.Root)
			continue
		}

		lhs, ok := translateOthers(entryA.LHS, entryB.LHS, iPos, self, pb.ids)
		if !ok {
			pb.ctx.Deref(entryB.Root)
			continue
		}

		combined, err := pb.ctx.Apply2(entryA.Root, entryB.Root, pb.opID, pb.leafIntersect)
		pb.ctx.Deref(entryB.Root)
		if err != nil {
			return err
		}
		if err := mergeEntry(pb.result, lhs, combined); err != nil {
			return err
		}
	}
	return nil
}
