// Package simulation computes the maximal simulation preorder of a
// bottom-up automaton (spec.md §4.7): the greatest relation p ≼ q such
// that, wherever p occurs at some position of a rule's left-hand side,
// q can occur at the same position of an equal-arity, equal-symbol rule
// whose other positions are pointwise simulated and whose successor set
// is lifted-included (every successor of the first has a simulating
// successor in the second).
//
// Compute starts from the coarsest candidate relation permitted by
// finality (p ≼ q only if p final implies q final) and repeatedly
// removes any pair that no longer has a witnessing rule, until a full
// pass removes nothing — the standard greatest-fixpoint shape, though
// driven here by full re-scans rather than the literal incremental
// worklist spec.md sketches (see DESIGN.md for why).
package simulation
