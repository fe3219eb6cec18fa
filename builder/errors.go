// SPDX-License-Identifier: MIT
// Package: symta/builder

package builder

import "errors"

// ErrDuplicateSymbol is returned by AddSymbol when name was already
// registered.
var ErrDuplicateSymbol = errors.New("builder: duplicate symbol name")

// ErrDuplicateState is returned by AddState when name was already
// registered.
var ErrDuplicateState = errors.New("builder: duplicate state name")

// ErrUnknownState is returned when a transition or final/initial
// marking refers to a state name never passed to AddState.
var ErrUnknownState = errors.New("builder: unknown state name")

// ErrUnknownSymbol is returned when a transition refers to a symbol
// name never passed to AddSymbol.
var ErrUnknownSymbol = errors.New("builder: unknown symbol name")

// ErrArityMismatch is returned when a transition's lhs length does not
// match the arity its symbol was registered with.
var ErrArityMismatch = errors.New("builder: lhs length does not match symbol arity")

// ErrSymbolSpaceExhausted is returned by AddSymbol once every concrete
// bit-pattern the builder's width can express has already been handed
// out.
var ErrSymbolSpaceExhausted = errors.New("builder: symbol space exhausted for this width")
