// SPDX-License-Identifier: MIT
// Package: symta/assignment
//
// errors.go — sentinel errors for the assignment package.
//
// Error policy (matches the rest of symta):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites may wrap with %w to add operation context.
//   - Programmer errors (an out-of-range index on an already validated
//     Assignment) panic; they can never be triggered by data a
//     caller legitimately controls once an Assignment has been constructed.
package assignment

import "errors"

// ErrWidthOutOfRange is returned by New when width is negative or exceeds
// MaxWidth.
var ErrWidthOutOfRange = errors.New("assignment: width out of range")

// ErrBadTritRune is returned by FromString when the input contains a rune
// other than '0', '1', or 'X'/'x'.
var ErrBadTritRune = errors.New("assignment: invalid trit rune")

// ErrLengthMismatch is returned by ParseWidth when the string length
// disagrees with the requested width.
var ErrLengthMismatch = errors.New("assignment: string length does not match width")
