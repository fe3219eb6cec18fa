// SPDX-License-Identifier: MIT
// Package: symta/mtbdd
//
// errors.go — sentinel errors for the mtbdd package, following the same
// policy as the rest of symta: sentinels only, errors.Is-only branching,
// panics reserved for programmer errors (double-deref, and Ref/Deref of a
// Root from another Context). Cross-context misuse in SetValue, GetValue
// and the Apply family is returned as ErrContextMismatch rather than a
// panic, since two otherwise-valid contexts are easy for a caller to mix
// up by accident and recovering gracefully is cheap.

package mtbdd

import (
	"errors"
	"fmt"
)

// ErrContextMismatch is returned whenever an operation is asked to combine
// roots that were not interned by the same Context.
var ErrContextMismatch = errors.New("mtbdd: roots belong to different contexts")

// ErrMultipleValues is returned by GetValue when a Star position in the
// queried assignment reaches two different leaves along its two branches.
var ErrMultipleValues = errors.New("mtbdd: assignment resolves to multiple leaves")

// ErrReleaseOfUnmanaged is the sentinel Deref panics with when the
// handle's generation no longer matches the live node at that slot —
// i.e. a double-deref or a deref of a handle into an already-freed
// node. This is a programmer error (mismanaged refcounting), not a
// condition a caller can legitimately trigger from user-controlled
// input, so it is wrapped in a panic rather than returned; it is
// exported as a sentinel so a recover()ing caller (e.g. a test
// asserting the panic, or a harness auditing refcount discipline via
// the Context.LiveRefs diagnostic) can match it with errors.Is.
var ErrReleaseOfUnmanaged = errors.New("mtbdd: deref of an unmanaged or already-released handle")

func wrapf(op string, err error) error {
	return fmt.Errorf("mtbdd.%s: %w", op, err)
}
