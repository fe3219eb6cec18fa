// Package automaton implements the bottom-up tree automaton container
// (spec.md §4.4): state allocation, the final-state marking, the
// transition table, and the bottom-up-to-top-down view conversion.
//
// An Automaton is created empty and grows by AddState/AddTransition/
// SetFinal calls; it owns exactly one transtable.Table (SPEC_FULL.md
// §5.4's resolved registration-token question: the table instance itself
// is the registration token, one per automaton). Two automata can only be
// combined (by the ops package) if they share the same mtbdd.Context —
// attempting otherwise fails with an error wrapping
// mtbdd.ErrContextMismatch.
//
// The same final-state marking doubles as the initial-state marking once
// an Automaton is converted to its top-down view (BUToTD): bottom-up
// acceptance (reduce the whole tree to a final state) and top-down
// acceptance (start reading from a final state) are the same relation
// read in either direction, so no separate "initial" set is tracked.
package automaton
