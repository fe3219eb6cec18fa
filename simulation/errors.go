// SPDX-License-Identifier: MIT
// Package: symta/simulation
//
// errors.go — sentinel errors. errLiftFails is internal: it is the
// signal a leaf combiner raises through mtbdd.Apply2's error channel to
// short-circuit the symbolic traversal the instant a witness rule fails
// the lifted-inclusion check, and is always translated back to a plain
// bool by the caller — it never escapes this package.

package simulation

import "errors"

var errLiftFails = errors.New("simulation: lifted inclusion fails")

// ErrIterationLimit is returned by Compute when WithMaxIterations caps
// the refinement loop and the preorder has not yet converged within
// that many passes.
var ErrIterationLimit = errors.New("simulation: refinement did not converge within the iteration limit")
