// Package inclusion decides language inclusion between two bottom-up
// automata via the antichain-and-simulation algorithm spec.md §4.8
// describes: a proof search over configurations (q, S) — a single
// "small"-automaton state paired with a set of "big"-automaton
// states — alternating And/Or obligations derived from each symbol's
// rules, pruned by an Included/Non-included memo and a Workset used to
// short-circuit upward-closed cycles.
//
// Included starts from both automata's final states (the bottom-up
// roots a top-down read begins from). Antichain subsumption between two
// candidate state sets is checked against the simulation preorder
// computed over the big automaton alone (simulation.Compute): that
// preorder only ever compares two of big's own states, never a small
// state against a big one — the two automata's rule sets are
// unrelated, so a direct cross-automaton comparison would not be a
// sound stand-in for inclusion (see checker.go).
package inclusion
