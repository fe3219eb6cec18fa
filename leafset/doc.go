// Package leafset implements the leaf values that symta's MTBDDs carry:
// ordered, duplicate-free sets used as bottom-up automaton leaves (sets of
// successor states) and top-down leaves (sets of successor-state vectors),
// plus the counter vector that the simulation package refines.
//
// Set[T] is generic over cmp.Ordered so the same sorted-slice
// representation backs a set of states (Set[State], State the uint32-based
// type defined by the transtable package and aliased by automaton) and a
// set of encoded state
// vectors (Set[string]) without duplicating the canonicalization logic.
//
// Every Set[T] is canonical: two sets with the same elements compare Equal
// and produce the same Key(), which is what lets symta's MTBDD engine
// intern leaf values by value rather than by identity (spec.md's "two
// leaves are equal iff their sets are element-wise equal" invariant).
//
// The singleton set containing only a designated "absent" element (the
// automaton sink state, or its encoded-vector equivalent) is the canonical
// encoding of "no successor" — see UnionOrAbsorb.
package leafset
