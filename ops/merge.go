// SPDX-License-Identifier: MIT
// Package: symta/ops
//
// merge.go — mergeEntry: the read-current/Apply2-union/write-back cycle
// shared by Union and Intersect whenever a computed root must be folded
// into a result automaton's table rather than simply installed (two
// source rules can translate to the same result LHS — Union's arity-0
// rules are the common case, spec.md §4.5 — so installing must never
// silently overwrite a rule already written for that LHS this call).

package ops

import (
	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/transtable"
)

// mergeEntry folds root (consumed) into result's table at lhs via the
// leaf-union Apply, replacing whatever was previously routed there.
func mergeEntry(result *automaton.Automaton, lhs []automaton.State, root mtbdd.Root) error {
	ctx := result.Context()
	current := result.Table().GetRoot(lhs)
	merged, err := ctx.Apply2(current, root, "ops.merge-leaf", transtable.UnionLeaf)
	ctx.Deref(current)
	ctx.Deref(root)
	if err != nil {
		return err
	}
	result.Table().SetRoot(lhs, merged)
	return nil
}
