// SPDX-License-Identifier: MIT
// Package: symta/ops
//
// union.go — Union (spec.md §4.5): disjoint-union the two automata's
// state spaces, union their final sets, and fold every rule of both
// tables into the result via the leaf-union Apply.

package ops

import (
	"fmt"

	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/transtable"
)

// OffsetB returns the shift Union applies to b's state ids when folding
// b into a union result built from a and b in that order — exported so
// collaborators can reproduce the same remap without re-deriving it from
// Union's internals.
func OffsetB(a *automaton.Automaton) automaton.State {
	return automaton.State(a.StateCount())
}

// RemapB translates a b-side state into its id in a Union(a, b) result,
// given offset = OffsetB(a). The sink maps to itself.
func RemapB(offset, s automaton.State) automaton.State {
	if s == automaton.Sink {
		return automaton.Sink
	}
	return s + offset
}

// Union returns a fresh automaton accepting exactly the union of the
// languages a and b accept bottom-up. a and b must share the same
// mtbdd.Context.
//
// a's states are carried over unchanged; b's states are shifted by
// a.StateCount() to keep the two spaces disjoint regardless of how a and
// b were built (spec.md notes ids "in practice" stay disjoint when both
// automata descend from one allocator, but Union does not assume that —
// an explicit shift is the only way to make two independently built
// automata safe to combine).
func Union(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	if a.Context() != b.Context() {
		return nil, fmt.Errorf("ops: Union: %w", mtbdd.ErrContextMismatch)
	}
	ctx := a.Context()
	result := automaton.New(ctx)

	for i := 0; i < a.StateCount(); i++ {
		result.AddState()
	}
	offsetB := OffsetB(a)
	for i := 0; i < b.StateCount(); i++ {
		result.AddState()
	}
	remapB := func(s automaton.State) automaton.State {
		return RemapB(offsetB, s)
	}

	for _, s := range a.FinalStates() {
		if err := result.SetFinal(s); err != nil {
			return nil, err
		}
	}
	for _, s := range b.FinalStates() {
		if err := result.SetFinal(remapB(s)); err != nil {
			return nil, err
		}
	}

	for entry := range a.Table().IterateNonBottom() {
		if err := mergeEntry(result, entry.LHS, entry.Root); err != nil {
			return nil, err
		}
	}

	remapSuccessors := func(l mtbdd.Leaf) (mtbdd.Leaf, error) {
		succ, ok := l.(transtable.Leaf)
		if !ok {
			return nil, fmt.Errorf("ops: Union: leaf %v is not a transtable.Leaf", l)
		}
		items := succ.Items()
		remapped := make([]automaton.State, len(items))
		for i, s := range items {
			remapped[i] = remapB(s)
		}
		return leafset.Of(remapped...), nil
	}
	// remapSuccessors closes over offsetB, which varies from call to call,
	// while Apply1's cache is keyed by (opID, root) and persists on the
	// shared Context — so offsetB must be part of opID itself (versioned,
	// the way simulation suffixes its lift-check opID with rel.version),
	// or a second Union sharing this Context could reuse another call's
	// remap and shift b's states by the wrong amount.
	remapOpID := fmt.Sprintf("ops.union-remap:%d", offsetB)

	for entry := range b.Table().IterateNonBottom() {
		lhs := make([]automaton.State, len(entry.LHS))
		for i, s := range entry.LHS {
			lhs[i] = remapB(s)
		}
		remappedRoot, err := ctx.Apply1(entry.Root, remapOpID, remapSuccessors)
		ctx.Deref(entry.Root)
		if err != nil {
			return nil, err
		}
		if err := mergeEntry(result, lhs, remappedRoot); err != nil {
			return nil, err
		}
	}

	return result, nil
}
