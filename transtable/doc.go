// Package transtable implements the arity-specialised symbolic transition
// table a bottom-up tree automaton stores its rules in: a mapping from a
// left-hand side (an ordered vector of states, arity 0..n) to an MTBDD root
// whose leaves are ordered sets of successor states.
//
// Storage is specialised by arity exactly as spec.md describes: arity 0 is
// a single root, arity 1 a slice indexed by state, arity 2 a slice of
// slices, and arity 3 and above a hash map keyed by the encoded LHS vector.
// The hash-map buckets also keep an explicit insertion-order key list, so
// IterateNonBottom is deterministic across runs regardless of Go's
// randomized map iteration order (SPEC_FULL.md §6, resolved Open Question
// 2) — the arity-1/2 slices grow lazily as new states are registered, the
// supplemented InflatableVector behavior described in SPEC_FULL.md §5.2.
//
// A Table does not know about automaton-level concepts (final states,
// symbols as anything other than an assignment.Assignment cube); it is
// purely the LHS → Root routing structure, parameterised by the shared
// mtbdd.Context every Table using it is built against.
package transtable
