// SPDX-License-Identifier: MIT
// Package: symta/automaton
//
// bu_to_td.go — BUToTD: bottom-up to top-down view conversion (spec.md
// §4.4). For each state q, builds a top-down MTBDD whose leaves enumerate,
// for every symbol, the set of LHS vectors (q_1,...,q_n) such that
// (q_1,...,q_n) --symbol--> rhs with q in rhs appears in the bottom-up
// table.
//
// Implementation follows spec.md's stated procedure directly: initialise
// one TD root per state to bottom, then for every non-bottom BU rule and
// every state q known to the automaton, Apply a monadic transform over
// the rule's root that keeps the rule's symbol-cube structure but swaps
// each leaf for either {lhsKey} (q is among that leaf's successors) or
// {absentVector} (it is not), and merge the result into td[q] via a
// vector-set union. This costs one Apply1 and one Apply2 per (rule, q)
// pair rather than per (rule, q-in-that-rule's-leaf) pair — simpler to
// reason about, and still correct, since the transform degenerates to
// "insert nothing" wherever q does not occur; spec.md's Non-goals exclude
// performance engineering beyond the core algorithms, so this is not
// further optimised to avoid visiting states absent from every leaf of a
// given rule.
package automaton

import (
	"fmt"

	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/transtable"
)

// absentVector is the canonical "no LHS vector here" marker for top-down
// leaves — the TD analogue of transtable.Sink for BU leaves.
const absentVector = ""

// TDLeaf is the top-down leaf type: an ordered, duplicate-free set of
// encoded LHS vectors (spec.md's "ordered set of state vectors").
type TDLeaf = leafset.Set[string]

// TDView is the top-down transition structure built from an Automaton's
// bottom-up rules by BUToTD. Its "initial" states are the same automaton's
// final states (see doc.go).
type TDView struct {
	ctx   *mtbdd.Context
	auto  *Automaton
	roots map[State]mtbdd.Root // roots[q] is q's top-down MTBDD
}

// GetRoot returns a fresh reference to q's top-down MTBDD root, or a
// fresh absent-constant reference if q has no recorded successors.
func (td *TDView) GetRoot(q State) mtbdd.Root {
	if r, ok := td.roots[q]; ok {
		return td.ctx.Ref(r)
	}
	return absentVectorRoot(td.ctx)
}

// absentVectorRoot builds a fresh reference to the TD-leaf constant
// {absentVector}. TD roots are built with this as their base rather than
// the Context's own BackgroundRoot(), since a's Context's background leaf
// is typed for the bottom-up view (a Set[State]); the top-down view uses
// a distinct leaf type (TDLeaf = Set[string]) that the Context's single
// background slot was never configured to hold.
func absentVectorRoot(ctx *mtbdd.Context) mtbdd.Root {
	return ctx.MakeLeaf(leafset.Singleton(absentVector))
}

// InitialStates returns the states top-down reading may start from — the
// underlying Automaton's final states.
func (td *TDView) InitialStates() []State {
	return td.auto.FinalStates()
}

// Release dereferences every root this TDView owns.
func (td *TDView) Release() {
	for _, r := range td.roots {
		td.ctx.Deref(r)
	}
}

// tdInsertOp builds the UnaryOp that, applied over a BU rule's root,
// replaces each successor-set leaf with {lhsKey} if q is among its
// successors, else {absentVector}.
func tdInsertOp(q State, lhsKey string) mtbdd.UnaryOp {
	return func(l mtbdd.Leaf) (mtbdd.Leaf, error) {
		succ, ok := l.(transtable.Leaf)
		if !ok {
			return nil, fmt.Errorf("automaton: BUToTD: leaf %v is not a transtable.Leaf", l)
		}
		if succ.Contains(q) {
			return leafset.Singleton(lhsKey), nil
		}
		return leafset.Singleton(absentVector), nil
	}
}

// tdUnion is the TD analogue of transtable's leaf-union Apply: ordinary
// set union of encoded-LHS-vector leaves, with the absent marker
// absorbing.
func tdUnion(a, b mtbdd.Leaf) (mtbdd.Leaf, error) {
	la, ok := a.(TDLeaf)
	if !ok {
		return nil, fmt.Errorf("automaton: tdUnion: operand %v is not a TDLeaf", a)
	}
	lb, ok := b.(TDLeaf)
	if !ok {
		return nil, fmt.Errorf("automaton: tdUnion: operand %v is not a TDLeaf", b)
	}
	return leafset.UnionOrAbsorb(la, lb, absentVector), nil
}

// BUToTD converts a's bottom-up rules into the top-down view spec.md
// §4.4 describes. The returned TDView is independent of further mutation
// of a (it is a snapshot of a's rules at call time) and must be Release'd
// by the caller.
func (a *Automaton) BUToTD() (*TDView, error) {
	td := &TDView{
		ctx:   a.ctx,
		auto:  a,
		roots: make(map[State]mtbdd.Root),
	}

	for entry := range a.table.IterateNonBottom() {
		lhsKey := transtable.EncodeLHS(entry.LHS)
		for q := State(1); q <= a.count; q++ {
			contribution, err := a.ctx.Apply1(entry.Root, "bu-to-td:"+lhsKey+fmt.Sprintf(":%d", q), tdInsertOp(q, lhsKey))
			if err != nil {
				a.ctx.Deref(entry.Root)
				td.Release()
				return nil, err
			}

			current, ok := td.roots[q]
			if !ok {
				current = absentVectorRoot(a.ctx)
			}
			merged, err := a.ctx.Apply2(current, contribution, "td-union", tdUnion)
			a.ctx.Deref(current)
			a.ctx.Deref(contribution)
			if err != nil {
				a.ctx.Deref(entry.Root)
				td.Release()
				return nil, err
			}
			td.roots[q] = merged
		}
		a.ctx.Deref(entry.Root)
	}

	return td, nil
}
