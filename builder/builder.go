// SPDX-License-Identifier: MIT
// Package: symta/builder
//
// builder.go — Builder: the stateful name→id/name→symbol translation
// spec.md §6.1 asks for, built the way teacher code layers a thin
// name-resolution collaborator over an id-based core (the same shape
// as the teacher's own graph builders resolving vertex labels before
// calling into core.Graph).

package builder

import (
	"fmt"

	"github.com/katalvlaran/symta/assignment"
	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
)

// symbolInfo is what AddSymbol remembers about a registered symbol:
// the arity every transition naming it must match, and the concrete
// bit-pattern allocated to it.
type symbolInfo struct {
	arity int
	code  *assignment.Assignment
}

// Builder accumulates a name-addressed automaton description and
// resolves it, incrementally, against an automaton.Automaton. The zero
// value is not usable; construct with New.
type Builder struct {
	auto     *automaton.Automaton
	width    int
	symbols  map[string]symbolInfo
	states   map[string]automaton.State
	nextCode uint64
}

// New creates a Builder wrapping a fresh Automaton over ctx, whose
// transitions are indexed by width symbol variables — the same width
// every AddSymbol-allocated code is drawn from.
func New(ctx *mtbdd.Context, width int) *Builder {
	return &Builder{
		auto:    automaton.New(ctx),
		width:   width,
		symbols: make(map[string]symbolInfo),
		states:  make(map[string]automaton.State),
	}
}

// Automaton returns the Automaton this Builder has been populating.
func (b *Builder) Automaton() *automaton.Automaton {
	return b.auto
}

// symbolLimit is the number of distinct concrete bit-patterns a
// width-variable alphabet can express.
func (b *Builder) symbolLimit() uint64 {
	if b.width >= 64 {
		return 0 // treated as "no limit" by allocateCode's overflow check
	}
	return uint64(1) << uint(b.width)
}

// allocateCode hands out the next unused concrete width-bit pattern,
// in ascending numeric order, little-endian over variable positions.
func (b *Builder) allocateCode() (*assignment.Assignment, error) {
	limit := b.symbolLimit()
	if limit != 0 && b.nextCode >= limit {
		return nil, ErrSymbolSpaceExhausted
	}

	code := assignment.MustNew(b.width)
	for i := 0; i < b.width; i++ {
		if b.nextCode&(uint64(1)<<uint(i)) != 0 {
			code.SetI(i, assignment.One)
		} else {
			code.SetI(i, assignment.Zero)
		}
	}
	b.nextCode++
	return code, nil
}

// AddSymbol registers name with the given arity and allocates it the
// next free concrete symbol code. Returns ErrDuplicateSymbol if name
// was already registered, or ErrSymbolSpaceExhausted if every code
// this builder's width can express is already in use.
func (b *Builder) AddSymbol(name string, arity int) error {
	if _, exists := b.symbols[name]; exists {
		return fmt.Errorf("AddSymbol(%q): %w", name, ErrDuplicateSymbol)
	}
	code, err := b.allocateCode()
	if err != nil {
		return fmt.Errorf("AddSymbol(%q): %w", name, err)
	}
	b.symbols[name] = symbolInfo{arity: arity, code: code}
	return nil
}

// AddState registers name and allocates it a fresh Automaton state id.
// Returns ErrDuplicateState if name was already registered.
func (b *Builder) AddState(name string) (automaton.State, error) {
	if _, exists := b.states[name]; exists {
		return automaton.Sink, fmt.Errorf("AddState(%q): %w", name, ErrDuplicateState)
	}
	s := b.auto.AddState()
	b.states[name] = s
	return s, nil
}

// resolveStates translates a slice of state names into their
// Automaton ids, failing on the first unregistered name.
func (b *Builder) resolveStates(names []string) ([]automaton.State, error) {
	out := make([]automaton.State, len(names))
	for i, name := range names {
		s, ok := b.states[name]
		if !ok {
			return nil, fmt.Errorf("state %q: %w", name, ErrUnknownState)
		}
		out[i] = s
	}
	return out, nil
}

// AddTransition registers lhsNames --symbolName--> rhsName. symbolName
// must already be registered with AddSymbol, with arity matching
// len(lhsNames); every name in lhsNames and rhsName must already have
// been registered with AddState.
func (b *Builder) AddTransition(lhsNames []string, symbolName, rhsName string) error {
	info, ok := b.symbols[symbolName]
	if !ok {
		return fmt.Errorf("AddTransition: symbol %q: %w", symbolName, ErrUnknownSymbol)
	}
	if len(lhsNames) != info.arity {
		return fmt.Errorf("AddTransition: symbol %q has arity %d, got %d lhs states: %w",
			symbolName, info.arity, len(lhsNames), ErrArityMismatch)
	}

	lhs, err := b.resolveStates(lhsNames)
	if err != nil {
		return fmt.Errorf("AddTransition: %w", err)
	}
	rhs, ok := b.states[rhsName]
	if !ok {
		return fmt.Errorf("AddTransition: state %q: %w", rhsName, ErrUnknownState)
	}

	return b.auto.AddTransition(lhs, info.code, leafset.Of(rhs))
}

// SetStateFinal marks name as a final (bottom-up accepting) state.
// Returns ErrUnknownState if name was never registered with AddState.
func (b *Builder) SetStateFinal(name string) error {
	s, ok := b.states[name]
	if !ok {
		return fmt.Errorf("SetStateFinal(%q): %w", name, ErrUnknownState)
	}
	return b.auto.SetFinal(s)
}

// SetStateInitial marks name as a top-down initial state. symta's data
// model treats bottom-up-final and top-down-initial as the same field
// read two ways (spec.md's Data Model), so this simply delegates to
// SetStateFinal.
func (b *Builder) SetStateInitial(name string) error {
	return b.SetStateFinal(name)
}
