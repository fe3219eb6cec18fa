// SPDX-License-Identifier: MIT
// Package: symta/automaton

package automaton

import (
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/transtable"
)

// State is an opaque non-negative state identifier; State(0) is the
// distinguished sink state, never returned by AddState.
type State = transtable.State

// Sink is the distinguished state denoting "no transition".
const Sink = transtable.Sink

// Leaf is the successor-state-set leaf type the underlying transition
// table's MTBDDs carry.
type Leaf = transtable.Leaf

// Automaton is a bottom-up tree automaton over a shared MTBDD engine
// (spec.md §3's Automaton record, §4.4's operations).
type Automaton struct {
	ctx   *mtbdd.Context
	count State // number of allocated states; valid states are 1..count
	final map[State]struct{}
	table *transtable.Table
}

// New creates an empty Automaton bound to ctx: no states, no transitions,
// every LHS routed to the bottom root (spec.md's stated lifecycle).
func New(ctx *mtbdd.Context) *Automaton {
	return &Automaton{
		ctx:   ctx,
		final: make(map[State]struct{}),
		table: transtable.New(ctx),
	}
}

// Context returns the shared MTBDD engine this Automaton is built against.
func (a *Automaton) Context() *mtbdd.Context {
	return a.ctx
}

// Table returns the underlying transition table, for collaborators (the
// ops and inclusion packages) that need direct arity-specialised access.
func (a *Automaton) Table() *transtable.Table {
	return a.table
}

// StateCount returns the number of states AddState has allocated so far
// (not counting the sink).
func (a *Automaton) StateCount() int {
	return int(a.count)
}

// IsKnownState reports whether s was allocated by AddState on this
// Automaton. Sink is never a known (user-allocated) state.
func (a *Automaton) IsKnownState(s State) bool {
	return s != Sink && s <= a.count
}
