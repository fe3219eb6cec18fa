// SPDX-License-Identifier: MIT
// Package: symta/automaton
//
// ops.go — AddState/SetFinal/IsFinal/AddTransition/GetTransition/Release:
// the Automaton's public contract (spec.md §4.4).

package automaton

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/symta/assignment"
)

// AddState allocates and returns a fresh state id.
func (a *Automaton) AddState() State {
	a.count++
	return a.count
}

// SetFinal marks s as a final (accepting, bottom-up) state. Returns
// ErrUnknownState if s was never allocated by AddState.
func (a *Automaton) SetFinal(s State) error {
	if !a.IsKnownState(s) {
		return fmt.Errorf("SetFinal(%d): %w", s, ErrUnknownState)
	}
	a.final[s] = struct{}{}
	return nil
}

// IsFinal reports whether s is marked final. Unknown states are never
// final.
func (a *Automaton) IsFinal(s State) bool {
	_, ok := a.final[s]
	return ok
}

// FinalStates returns every state currently marked final, in ascending
// order.
func (a *Automaton) FinalStates() []State {
	out := make([]State, 0, len(a.final))
	for s := range a.final {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// checkVector verifies every state in lhs is known to this Automaton.
func (a *Automaton) checkVector(lhs []State) error {
	for _, s := range lhs {
		if !a.IsKnownState(s) {
			return fmt.Errorf("AddTransition(lhs=%v): %w", lhs, ErrUnknownState)
		}
	}
	return nil
}

// checkSuccessors verifies every non-sink state in succ is known to this
// Automaton.
func (a *Automaton) checkSuccessors(succ Leaf) error {
	for _, s := range succ.Items() {
		if s != Sink && !a.IsKnownState(s) {
			return fmt.Errorf("AddTransition(succ=%v): %w", succ.Items(), ErrUnknownState)
		}
	}
	return nil
}

// AddTransition registers lhs --symbol--> succ. Every state in lhs and
// every non-sink state in succ must already have been allocated via
// AddState, or this returns ErrUnknownState (spec.md §4.4).
func (a *Automaton) AddTransition(lhs []State, symbol *assignment.Assignment, succ Leaf) error {
	if err := a.checkVector(lhs); err != nil {
		return err
	}
	if err := a.checkSuccessors(succ); err != nil {
		return err
	}
	return a.table.AddTransition(lhs, symbol, succ)
}

// GetTransition returns the successor-state set reachable from lhs under
// symbol, or the canonical absent leaf ({Sink}) if no rule matches
// (spec.md §4.4: "returns empty if no rule exists" — realised here as the
// {Sink} absent marker, per spec.md's resolved sink-encoding Open
// Question; see DESIGN.md).
func (a *Automaton) GetTransition(lhs []State, symbol *assignment.Assignment) (Leaf, error) {
	root := a.table.GetRoot(lhs)
	defer a.ctx.Deref(root)

	v, err := a.ctx.GetValue(root, symbol)
	if err != nil {
		return Leaf{}, err
	}
	leaf, ok := v.(Leaf)
	if !ok {
		return Leaf{}, fmt.Errorf("automaton: GetTransition: leaf %v is not a transtable.Leaf", v)
	}
	return leaf, nil
}

// Release dereferences every MTBDD root this Automaton owns (its
// transition table's roots). Call this once, when the Automaton is
// discarded, per spec.md's stated lifecycle ("Destroyed by dereferencing
// all held roots").
func (a *Automaton) Release() {
	a.table.Release()
}
