// SPDX-License-Identifier: MIT
// Package: symta/inclusion

package inclusion

import "errors"

// ErrWidthMismatch is returned when the two automata's rules are
// materialised against a symbol width that does not evenly decode at
// least one rule's cube (a caller-supplied width narrower than the
// automata's actual alphabet).
var ErrWidthMismatch = errors.New("inclusion: width mismatch")

// ErrIterationLimit is returned by Included when WithMaxIterations caps
// the number of top-level final-state obligations and the search has
// not finished discharging them all within that many.
var ErrIterationLimit = errors.New("inclusion: proof search did not finish within the iteration limit")
