// SPDX-License-Identifier: MIT
// Package: symta/inclusion
//
// rules.go — materialises an automaton's bottom-up rules, keyed by
// (arity, concrete symbol), the grouping expand needs to decide
// spec.md §4.8's per-(arity,symbol) obligation groups. Unlike
// simulation's materializeRules (which walks a rule's MTBDD cube
// lockstep against another rule's via Apply2), inclusion must read out
// every concrete symbol a rule fires on — the antichain decomposition
// below is defined per symbol, not per rule — so each rule's root is
// queried once per completion of assignment.MustNew(width).Enumerate()
// and then dereferenced.

package inclusion

import (
	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/transtable"
)

// rule is one materialised bottom-up rule, restricted to a single
// concrete symbol: lhs is the rule's left-hand-side state vector and
// succ is the successor-state set that symbol routes to.
type rule struct {
	lhs  []automaton.State
	succ []automaton.State
}

// materializeRules groups a's rules by arity and then by the exact
// symbol string (assignment.String) they fire on.
func materializeRules(a *automaton.Automaton, width int) (map[int]map[string][]rule, error) {
	out := make(map[int]map[string][]rule)
	full := assignment.MustNew(width)

	for entry := range a.Table().IterateNonBottom() {
		k := len(entry.LHS)

		for asgn := range full.Enumerate() {
			leaf, err := a.Context().GetValue(entry.Root, asgn)
			if err != nil {
				a.Context().Deref(entry.Root)
				return nil, err
			}
			succLeaf, ok := leaf.(transtable.Leaf)
			if !ok {
				a.Context().Deref(entry.Root)
				return nil, ErrWidthMismatch
			}
			if succLeaf.IsSingletonOf(automaton.Sink) {
				continue
			}

			key := asgn.String()
			if out[k] == nil {
				out[k] = make(map[string][]rule)
			}
			out[k][key] = append(out[k][key], rule{lhs: entry.LHS, succ: succLeaf.Items()})
		}

		a.Context().Deref(entry.Root)
	}

	return out, nil
}
