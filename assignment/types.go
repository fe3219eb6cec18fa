// SPDX-License-Identifier: MIT
// Package: symta/assignment

package assignment

import "fmt"

// MaxWidth is the largest number of variables a single Assignment can hold.
// Each variable is packed into one bit of two parallel uint64 bit-planes
// (star/value), so MaxWidth is bounded by the machine word size.
const MaxWidth = 64

// Trit is one of the three values a ternary variable assignment position
// can hold.
type Trit uint8

const (
	// Zero is the concrete Boolean value false.
	Zero Trit = iota
	// One is the concrete Boolean value true.
	One
	// Star is "don't care": both Zero and One match.
	Star
)

// String renders a single Trit as '0', '1', or 'X'.
func (t Trit) String() string {
	switch t {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "X"
	}
}

// Assignment is a fixed-width ternary bit-vector. The zero value is a
// width-0 Assignment; use New to reserve width.
//
// Internal layout: star is set for positions that are Star (including
// positions never written via SetI); value holds the Boolean value for
// positions where star is clear. Both planes are only meaningful in the
// low `width` bits.
type Assignment struct {
	width int
	star  uint64
	value uint64
}

// New allocates an Assignment of the given width, with every position
// initialised to Star ("don't care"/"unused" — symta does not distinguish
// the two once an Assignment is in hand; see doc.go).
func New(width int) (*Assignment, error) {
	if width < 0 || width > MaxWidth {
		return nil, fmt.Errorf("New(%d): %w", width, ErrWidthOutOfRange)
	}

	return &Assignment{
		width: width,
		star:  mask(width), // every position starts as Star
	}, nil
}

// MustNew is New but panics on error; intended for package-level constants
// and tests where width is a compile-time literal known to be valid.
func MustNew(width int) *Assignment {
	a, err := New(width)
	if err != nil {
		panic(err)
	}
	return a
}

// mask returns a uint64 with the low `width` bits set.
func mask(width int) uint64 {
	if width <= 0 {
		return 0
	}
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// Width returns the number of variable positions in a.
func (a *Assignment) Width() int {
	return a.width
}

// checkIndex panics if i is outside [0, width) — a programmer error, since
// callers are expected to size their loops from Width().
func (a *Assignment) checkIndex(i int) {
	if i < 0 || i >= a.width {
		panic(fmt.Sprintf("assignment: index %d out of range [0,%d)", i, a.width))
	}
}

// GetI reads the Trit at position i.
func (a *Assignment) GetI(i int) Trit {
	a.checkIndex(i)
	bit := uint64(1) << uint(i)
	if a.star&bit != 0 {
		return Star
	}
	if a.value&bit != 0 {
		return One
	}
	return Zero
}

// SetI writes the Trit at position i, returning a, so calls can be chained.
func (a *Assignment) SetI(i int, t Trit) *Assignment {
	a.checkIndex(i)
	bit := uint64(1) << uint(i)
	switch t {
	case Star:
		a.star |= bit
	case One:
		a.star &^= bit
		a.value |= bit
	default: // Zero
		a.star &^= bit
		a.value &^= bit
	}
	return a
}

// IsConcrete reports whether a has no Star positions, i.e. it denotes a
// single symbol rather than a set of symbols.
func (a *Assignment) IsConcrete() bool {
	return a.star&mask(a.width) == 0
}

// StarCount returns the number of Star positions in a.
func (a *Assignment) StarCount() int {
	return popcount(a.star & mask(a.width))
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// Clone returns an independent copy of a.
func (a *Assignment) Clone() *Assignment {
	cp := *a
	return &cp
}

// Equal reports whether a and b have the same width and the same Trit at
// every position.
func (a *Assignment) Equal(b *Assignment) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.width != b.width {
		return false
	}
	m := mask(a.width)
	return a.star&m == b.star&m && a.value&m == b.value&m
}

// Agrees reports whether a and b agree on every position where neither is
// Star — the semantic relation spec.md §8 Property 2 relies on: two
// assignments that "agree on all positions" map to the same leaf. Widths
// must match.
func (a *Assignment) Agrees(b *Assignment) bool {
	if a.width != b.width {
		return false
	}
	m := mask(a.width)
	determined := (^a.star) & (^b.star) & m
	return (a.value^b.value)&determined == 0
}
