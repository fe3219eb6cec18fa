// Package ops implements the two automaton-algebra operations spec.md
// defines directly over the bottom-up transition table: Union (§4.5) and
// product Intersection (§4.6).
//
// Both operations require their operands to share the same mtbdd.Context
// (same variable ordering, same interned leaves) — symta does not attempt
// to reconcile automata built against different engines; passing automata
// from different Contexts fails with mtbdd.ErrContextMismatch, wrapped
// with the operation name.
package ops
