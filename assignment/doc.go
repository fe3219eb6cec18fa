// Package assignment implements fixed-width ternary (0/1/*) bit-vector
// variable assignments, the unit symta uses to encode both Boolean-encoded
// ranked-alphabet symbols and the paths walked through an MTBDD.
//
// A Trit is one of Zero, One, or Star ("don't care"); a position that has
// never been written reads back as Star too, so an Assignment built
// incrementally (SetI called only for the positions a caller cares about)
// behaves exactly like one built all at once with the missing positions
// explicitly starred.
//
// Assignment is immutable-by-value for all read operations and supports a
// lazy, allocation-free walk over every concrete (non-star) completion via
// Enumerate, using the standard range-over-func iterator shape introduced
// in Go 1.23.
//
// Complexity: every operation below is O(1) except Enumerate, which is
// O(2^k) where k is the number of don't-care positions — unavoidable, since
// that is the size of the set being walked.
package assignment
