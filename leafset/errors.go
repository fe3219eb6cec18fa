// SPDX-License-Identifier: MIT
// Package: symta/leafset
//
// errors.go — sentinel errors for the leafset package. Follows the same
// policy as assignment/errors.go: sentinels only, errors.Is at call sites,
// programmer errors panic.
package leafset

import "errors"

// ErrIndexOutOfRange is returned by CounterVector.Dec and CounterVector.Get
// when the requested index is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("leafset: index out of range")
