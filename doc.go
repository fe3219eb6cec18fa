// Package symta is your in-memory toolkit for nondeterministic finite tree
// automata (NFTA) whose transition relation is represented symbolically as a
// shared multi-terminal binary decision diagram (MTBDD).
//
// 🚀 What is symta?
//
//	A small, single-threaded, nearly zero-dependency library that brings
//	together:
//
//	  • A shared MTBDD engine — canonical, reduced, reference-counted nodes
//	  • A symbolic transition table layered on top of it
//	  • Bottom-up and top-down views of the same automaton
//	  • Union, product intersection, and BU↔TD conversion
//	  • A maximal simulation preorder (greatest fixpoint)
//	  • Antichain-based language inclusion, accelerated by simulation
//
// ✨ Why choose symta?
//
//   - Shared        — every automaton registered against the same Context
//     shares structure; equal leaves and equal sub-diagrams are never
//     duplicated.
//   - Synchronous   — every public operation runs to completion on the
//     calling goroutine; cancellation is cooperative via context.Context.
//   - Pure Go       — no cgo, one third-party dependency (testify, tests only).
//
// Under the hood, everything is organized under nine subpackages:
//
//	assignment/  — fixed-width ternary (0/1/*) bit-vector variable assignments
//	mtbdd/       — the shared MTBDD engine: Context, Node, Apply1/2/3
//	leafset/     — generic ordered-set and counter-vector leaf values
//	transtable/  — arity-specialised symbolic transition table
//	automaton/   — the BU automaton container, state allocation, BU→TD views
//	ops/         — union and product intersection
//	simulation/  — the maximal simulation preorder
//	inclusion/   — antichain-based language inclusion checking
//	builder/     — the external builder collaborator contract (see symta/builder)
//
// symta never parses or pretty-prints the Timbuk textual format and never
// drives a command line — those remain external collaborators, referenced
// only through the builder.Builder interface and through the automaton
// types they populate. See SPEC_FULL.md and DESIGN.md in the repository
// root for the full design rationale.
//
//	go get github.com/katalvlaran/symta
package symta
