// SPDX-License-Identifier: MIT
// Package: symta/builder
//
// Package builder implements the external, name-based collaborator
// contract spec.md §6.1 describes: symbols, states, and transitions
// are introduced by name (as a Timbuk-style textual source would),
// and translated underneath into automaton.Automaton's integer state
// ids and assignment.Assignment bit-vectors. It exists because
// automaton.Automaton's own API is deliberately the opposite of this —
// State is an opaque id allocated by AddState, and a transition's
// symbol is a concrete *assignment.Assignment — so any caller that only
// has names (a parser, a REPL, a test fixture written by hand) needs a
// layer translating both directions before it can drive an Automaton.
//
// Symbol names are assigned a concrete bit-pattern the first time
// AddSymbol sees them, in allocation order: the mapping is otherwise
// arbitrary, so
// assigning it by arrival order keeps it reproducible without forcing
// the caller to think in bits at all.
package builder
