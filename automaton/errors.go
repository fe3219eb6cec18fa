// SPDX-License-Identifier: MIT
// Package: symta/automaton
//
// errors.go — sentinel errors for the automaton package.
//
// Error policy (matches the rest of symta): sentinels only, errors.Is at
// call sites, never string-compared; programmer errors (index out of
// range on an already-validated structure) panic instead.

package automaton

import "errors"

// ErrUnknownState is returned by AddTransition/SetFinal when a State
// argument was never allocated by this Automaton's AddState
// (spec.md §4.4: "all states must have been added; else UnknownState
// error").
var ErrUnknownState = errors.New("automaton: unknown state")
