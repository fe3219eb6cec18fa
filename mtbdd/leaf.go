// SPDX-License-Identifier: MIT
// Package: symta/mtbdd

package mtbdd

// Leaf is the capability every concrete leaf value (an ordered set of
// states, an ordered set of state vectors, a simulation counter vector...)
// must satisfy to be stored in an MTBDD. symta interns leaves by value: two
// leaves are the same node iff they have the same dynamic type and their
// Key() strings are equal, which is why
// every concrete Leaf type (see the leafset package) keeps its own
// canonical, sorted, duplicate-free representation — Key() only has to
// serialize that canonical form, never normalize it.
//
// Key must be a pure function of the leaf's logical value: equal values
// always produce equal keys, and different values of the same type always
// produce different keys. This is the one piece of the "LeafCapability {equals, hash,
// combine_for_union, release}" contract the engine itself needs; combine
// operators live outside the engine as Apply functors (BinaryOp, TernaryOp,
// UnaryOp) supplied by callers, and Releaser below covers the optional
// release hook.
type Leaf interface {
	Key() string
}

// Releaser is an optional capability a Leaf implementation may satisfy: if
// present, Release is called exactly once, when the leaf's last reference
// is dropped and its node is about to be freed. Most concrete leaves (plain
// Go values) have nothing to release and do not need to implement this.
type Releaser interface {
	Release()
}

// BinaryOp combines the leaves reached by two diagrams along the same
// path into the leaf of the result diagram, for use with Context.Apply2.
// A BinaryOp must be deterministic and side-effect free (besides the
// logical leaf-combination itself): the engine may invoke it once and
// reuse the cached result for any later call with the same operand pair
// and operator id.
type BinaryOp func(a, b Leaf) (Leaf, error)

// TernaryOp is BinaryOp's three-operand counterpart, for use with
// Context.Apply3.
type TernaryOp func(a, b, c Leaf) (Leaf, error)

// UnaryOp transforms a single leaf into another, for use with
// Context.Apply1 (monadic traversal — e.g. releasing or rewriting leaves).
type UnaryOp func(a Leaf) (Leaf, error)
