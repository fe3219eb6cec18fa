// SPDX-License-Identifier: MIT
// Package: symta/transtable
//
// ops.go — GetRoot/SetRoot/AddTransition/IterateNonBottom/Release: the
// Table's public contract (spec.md §4.3). Roots returned to the caller
// (GetRoot, IterateNonBottom) are fresh owned references the caller must
// Deref; roots passed into SetRoot are consumed (the Table takes over
// ownership), matching the borrow/produce convention mtbdd itself uses.

package transtable

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
)

// GetRoot returns the root routed to by lhs, or a fresh reference to the
// bottom root if no rule has ever targeted this LHS.
func (t *Table) GetRoot(lhs []State) mtbdd.Root {
	switch len(lhs) {
	case 0:
		return t.ctx.Ref(t.arity0)
	case 1:
		idx := int(lhs[0])
		if idx >= len(t.arity1) {
			return t.ctx.BackgroundRoot()
		}
		return t.ctx.Ref(t.arity1[idx])
	case 2:
		i, j := int(lhs[0]), int(lhs[1])
		if i >= len(t.arity2) || j >= len(t.arity2[i]) {
			return t.ctx.BackgroundRoot()
		}
		return t.ctx.Ref(t.arity2[i][j])
	default:
		bucket := t.arityN[len(lhs)]
		if bucket == nil {
			return t.ctx.BackgroundRoot()
		}
		key := encodeLHS(lhs)
		root, ok := bucket.byKey[key]
		if !ok {
			return t.ctx.BackgroundRoot()
		}
		return t.ctx.Ref(root)
	}
}

// SetRoot stores root as the routing target for lhs, consuming root (the
// Table becomes its owner) and dereferencing whatever root previously
// occupied that slot.
func (t *Table) SetRoot(lhs []State, root mtbdd.Root) {
	switch len(lhs) {
	case 0:
		t.ctx.Deref(t.arity0)
		t.arity0 = root
	case 1:
		idx := int(lhs[0])
		t.growArity1(idx)
		t.ctx.Deref(t.arity1[idx])
		t.arity1[idx] = root
	case 2:
		i, j := int(lhs[0]), int(lhs[1])
		t.growArity2(i, j)
		t.ctx.Deref(t.arity2[i][j])
		t.arity2[i][j] = root
	default:
		k := len(lhs)
		bucket := t.arityN[k]
		if bucket == nil {
			bucket = &arityNBucket{
				byKey:    make(map[string]mtbdd.Root),
				lhsByKey: make(map[string][]State),
			}
			t.arityN[k] = bucket
		}
		key := encodeLHS(lhs)
		if old, ok := bucket.byKey[key]; ok {
			t.ctx.Deref(old)
		} else {
			bucket.order = append(bucket.order, key)
			bucket.lhsByKey[key] = append([]State(nil), lhs...)
		}
		bucket.byKey[key] = root
	}
}

// growArity1 ensures t.arity1 has at least idx+1 entries, filling new
// slots with fresh references to the bottom root.
func (t *Table) growArity1(idx int) {
	for len(t.arity1) <= idx {
		t.arity1 = append(t.arity1, t.ctx.BackgroundRoot())
	}
}

// growArity2 ensures t.arity2 has at least i+1 rows, each with at least
// j+1 columns, filling new slots with fresh references to the bottom root.
func (t *Table) growArity2(i, j int) {
	for len(t.arity2) <= i {
		t.arity2 = append(t.arity2, nil)
	}
	for len(t.arity2[i]) <= j {
		t.arity2[i] = append(t.arity2[i], t.ctx.BackgroundRoot())
	}
}

// encodeLHS renders an arity->=3 LHS vector as a deterministic string key.
func encodeLHS(lhs []State) string {
	return EncodeLHS(lhs)
}

// EncodeLHS renders any LHS vector as a deterministic string key — the
// same encoding AddTransition/GetRoot use internally for arity >= 3.
// Exported for collaborators (automaton's BU->TD conversion) that need to
// key a top-down leaf by the bottom-up LHS vector it came from.
func EncodeLHS(lhs []State) string {
	var b strings.Builder
	for i, s := range lhs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", s)
	}
	return b.String()
}

// DecodeLHS parses a key produced by EncodeLHS back into an LHS vector.
// Exported as EncodeLHS's inverse for collaborators that store or log
// encoded LHS keys and later need the structured vector back.
func DecodeLHS(key string) ([]State, error) {
	if key == "" {
		return nil, nil
	}
	parts := strings.Split(key, ",")
	out := make([]State, len(parts))
	for i, p := range parts {
		var s uint32
		if _, err := fmt.Sscanf(p, "%d", &s); err != nil {
			return nil, fmt.Errorf("transtable: DecodeLHS(%q): %w", key, err)
		}
		out[i] = State(s)
	}
	return out, nil
}

// unionLeaf is the "leaf-union Apply" operator spec.md §4.3 mandates:
// the set union of two successor-state leaves, with {Sink} absorbing
// (never combined with a non-sink state in the same leaf).
func unionLeaf(a, b mtbdd.Leaf) (mtbdd.Leaf, error) {
	la, ok := a.(Leaf)
	if !ok {
		return nil, fmt.Errorf("transtable: unionLeaf: operand %v is not a transtable.Leaf", a)
	}
	lb, ok := b.(Leaf)
	if !ok {
		return nil, fmt.Errorf("transtable: unionLeaf: operand %v is not a transtable.Leaf", b)
	}
	return leafset.UnionOrAbsorb(la, lb, Sink), nil
}

// UnionLeaf exports unionLeaf for collaborators outside this package (the
// ops package's Union, which must fold two automata's tables together
// using the exact same leaf-merge semantics AddTransition uses
// internally, rather than reimplementing it).
func UnionLeaf(a, b mtbdd.Leaf) (mtbdd.Leaf, error) {
	return unionLeaf(a, b)
}

// AddTransition reads the current root for lhs (or bottom), builds a cube
// MTBDD encoding symbol -> succ, combines the two via the leaf-union
// Apply, and replaces the stored root (spec.md §4.3).
func (t *Table) AddTransition(lhs []State, symbol *assignment.Assignment, succ Leaf) error {
	current := t.GetRoot(lhs)

	bottom := t.ctx.BackgroundRoot()
	cube, err := t.ctx.SetValue(bottom, symbol, succ)
	t.ctx.Deref(bottom)
	if err != nil {
		t.ctx.Deref(current)
		return err
	}

	merged, err := t.ctx.Apply2(current, cube, "transtable.union-leaf", unionLeaf)
	t.ctx.Deref(current)
	t.ctx.Deref(cube)
	if err != nil {
		return err
	}

	t.SetRoot(lhs, merged)
	return nil
}

// Entry is one non-bottom row of the table, yielded by IterateNonBottom.
// Root is a fresh owned reference the caller must Deref.
type Entry struct {
	LHS  []State
	Root mtbdd.Root
}

// IterateNonBottom enumerates every LHS whose routed root is not the
// bottom root, in the deterministic order spec.md §5 requires: arity 0,
// then arity 1 (state order), then arity 2 (row-major), then arity >= 3
// (grouped by arity ascending, insertion order within each group).
func (t *Table) IterateNonBottom() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		bottom := t.ctx.BackgroundRoot()
		defer t.ctx.Deref(bottom)

		if t.arity0 != bottom {
			if !yield(Entry{LHS: nil, Root: t.ctx.Ref(t.arity0)}) {
				return
			}
		}
		for s, root := range t.arity1 {
			if root == bottom {
				continue
			}
			if !yield(Entry{LHS: []State{State(s)}, Root: t.ctx.Ref(root)}) {
				return
			}
		}
		for i, row := range t.arity2 {
			for j, root := range row {
				if root == bottom {
					continue
				}
				if !yield(Entry{LHS: []State{State(i), State(j)}, Root: t.ctx.Ref(root)}) {
					return
				}
			}
		}

		arities := make([]int, 0, len(t.arityN))
		for k := range t.arityN {
			arities = append(arities, k)
		}
		sort.Ints(arities)
		for _, k := range arities {
			bucket := t.arityN[k]
			for _, key := range bucket.order {
				root := bucket.byKey[key]
				if root == bottom {
					continue
				}
				lhs := append([]State(nil), bucket.lhsByKey[key]...)
				if !yield(Entry{LHS: lhs, Root: t.ctx.Ref(root)}) {
					return
				}
			}
		}
	}
}

// Release dereferences every root this Table owns. Call this once, when
// the owning automaton is destroyed (spec.md's automaton lifecycle).
func (t *Table) Release() {
	t.ctx.Deref(t.arity0)
	for _, r := range t.arity1 {
		t.ctx.Deref(r)
	}
	for _, row := range t.arity2 {
		for _, r := range row {
			t.ctx.Deref(r)
		}
	}
	for _, bucket := range t.arityN {
		for _, r := range bucket.byKey {
			t.ctx.Deref(r)
		}
	}
}
