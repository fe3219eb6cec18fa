// Package mtbdd implements a shared, canonical, reduced, ordered
// multi-terminal binary decision diagram (MTBDD) — the symbolic engine
// underneath every transition table in symta.
//
// A Context is the single owner of every node it interns: internal nodes
// (a variable index plus a low/high child pair) and leaves (an arbitrary
// value satisfying the Leaf capability) are deduplicated into one shared
// DAG, so that structurally identical sub-diagrams — across every
// automaton registered against the same Context — occupy exactly one
// node. Nodes are freed the moment nothing references them anymore,
// tracked with simple, explicit reference counting (Ref/Deref); the DAG is
// acyclic by construction, so counting suffices and no tracing collector
// is needed.
//
// Root is an opaque handle that owns exactly one reference into a
// Context's node table. Handing a Root to a function conceptually moves
// that reference; cloning a Root requires an explicit Ref call. This
// replaces the "pointer with manual increment" idiom of the C++ system
// this package is modeled on (see DESIGN.md) with a small, auditable Go
// surface.
//
// Variable indices increase strictly from the root of a diagram toward
// its leaves — the standard BDD discipline — so Apply2's "recurse on the
// variable closest to the root" step is `v = min(var(a), var(b))`, exactly
// as described in the design this package implements.
//
// Concurrency: a Context is not safe for concurrent use. symta is a
// single-threaded, synchronous library (see the root package doc); every
// public Context method must run to completion on one goroutine before
// another call begins.
package mtbdd
