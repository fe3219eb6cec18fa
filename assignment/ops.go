// SPDX-License-Identifier: MIT
// Package: symta/assignment
//
// ops.go — textual round-trip and lazy enumeration of concrete completions.

package assignment

import (
	"fmt"
	"iter"
	"strings"
)

// String renders a as a string of width runs of '0', '1', or 'X', most
// significant (highest index) position last — i.e. position 0 is the first
// rune. This matches the Timbuk-adjacent convention used by every
// external collaborator symta has been grounded against.
func (a *Assignment) String() string {
	var b strings.Builder
	b.Grow(a.width)
	for i := 0; i < a.width; i++ {
		b.WriteString(a.GetI(i).String())
	}
	return b.String()
}

// FromString parses a string over {0,1,X,x} into a new Assignment whose
// width is the string's length. It returns ErrBadTritRune on any other
// rune.
func FromString(s string) (*Assignment, error) {
	a, err := New(len(s))
	if err != nil {
		return nil, err
	}
	for i, r := range s {
		switch r {
		case '0':
			a.SetI(i, Zero)
		case '1':
			a.SetI(i, One)
		case 'X', 'x':
			a.SetI(i, Star)
		default:
			return nil, fmt.Errorf("FromString(%q) at rune %d: %w", s, i, ErrBadTritRune)
		}
	}
	return a, nil
}

// ParseWidth parses s like FromString but requires the result to have the
// given width, returning ErrLengthMismatch otherwise. Useful when a caller
// already fixed the width of the MTBDD context being queried.
func ParseWidth(s string, width int) (*Assignment, error) {
	if len(s) != width {
		return nil, fmt.Errorf("ParseWidth(%q, %d): %w", s, width, ErrLengthMismatch)
	}
	return FromString(s)
}

// Enumerate lazily walks every concrete (Star-free) completion of a, in
// ascending numeric order of the Star positions treated as a little-endian
// counter. It yields a fresh Assignment per completion; mutating the
// yielded value does not affect a or subsequent completions.
//
// Complexity: O(2^k) yields where k = a.StarCount(); O(1) extra space per
// step beyond the yielded value itself.
func (a *Assignment) Enumerate() iter.Seq[*Assignment] {
	return func(yield func(*Assignment) bool) {
		stars := make([]int, 0, a.width)
		for i := 0; i < a.width; i++ {
			if a.GetI(i) == Star {
				stars = append(stars, i)
			}
		}
		k := len(stars)
		total := uint64(1) << uint(k)
		for counter := uint64(0); counter < total; counter++ {
			out := a.Clone()
			for bit, pos := range stars {
				if counter&(uint64(1)<<uint(bit)) != 0 {
					out.SetI(pos, One)
				} else {
					out.SetI(pos, Zero)
				}
			}
			if !yield(out) {
				return
			}
		}
	}
}
