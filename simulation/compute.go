// SPDX-License-Identifier: MIT
// Package: symta/simulation
//
// compute.go — Compute: the greatest-fixpoint refinement loop (spec.md
// §4.7). Each rule's left-hand-side vector and its MTBDD root are
// materialised once from the automaton's table; equal-arity rule pairs
// are then checked, position by position, using a CounterVector that
// starts all-ones and has each mismatching position decremented to
// zero — a pair survives exactly as long as leafset.CounterVector's
// AllPositive holds, which is spec.md's "removes a pair when some
// counter underflows" criterion applied per rule-pair rather than
// tracked incrementally per state-pair (see DESIGN.md).

package simulation

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/transtable"
)

// rule is one materialised (LHS vector, rule-root) pair; root is an
// owned reference released by Compute before it returns.
type rule struct {
	lhs  []automaton.State
	root mtbdd.Root
}

func materializeRules(a *automaton.Automaton) (map[int][]rule, func()) {
	byArity := make(map[int][]rule)
	for entry := range a.Table().IterateNonBottom() {
		k := len(entry.LHS)
		byArity[k] = append(byArity[k], rule{lhs: entry.LHS, root: entry.Root})
	}
	release := func() {
		ctx := a.Context()
		for _, rs := range byArity {
			for _, rl := range rs {
				ctx.Deref(rl.root)
			}
		}
	}
	return byArity, release
}

// counterFor builds the per-position pointwise-simulation counter for
// candidate witness pair (u, v): 1 at every position where rel currently
// holds u[i] ≼ v[i], 0 elsewhere.
func counterFor(u, v rule, rel *Relation) leafset.CounterVector {
	cv := leafset.NewCounterVector(len(u.lhs), 1)
	for pos := range u.lhs {
		if !rel.Simulates(u.lhs[pos], v.lhs[pos]) {
			if dec, ok, _ := cv.Dec(pos); ok {
				cv = dec
			}
		}
	}
	return cv
}

// liftHolds reports whether u's rule-root is lifted-included in v's
// (for every symbol on which u has a successor, each of u's successors
// has a rel-simulating non-sink successor in v under that same symbol),
// using Apply2 to synchronise the two
// diagrams symbol by symbol and errLiftFails to short-circuit the first
// counterexample. opID is versioned by rel so a result computed against
// an earlier, looser rel (or another Compute call's rel) can never be
// served stale from the Apply2 cache once rel has shrunk.
func liftHolds(ctx *mtbdd.Context, rel *Relation, u, v rule) (bool, error) {
	opID := fmt.Sprintf("simulation.lift:%d", rel.version)
	resultRoot, err := ctx.Apply2(u.root, v.root, opID, func(a, b mtbdd.Leaf) (mtbdd.Leaf, error) {
		la, ok := a.(transtable.Leaf)
		if !ok {
			return nil, fmt.Errorf("simulation: leaf %v is not a transtable.Leaf", a)
		}
		lb, ok := b.(transtable.Leaf)
		if !ok {
			return nil, fmt.Errorf("simulation: leaf %v is not a transtable.Leaf", b)
		}
		if la.IsSingletonOf(automaton.Sink) {
			return la, nil
		}
		for _, s1 := range la.Items() {
			found := false
			for _, s2 := range lb.Items() {
				if s2 == automaton.Sink {
					continue
				}
				if rel.Simulates(s1, s2) {
					found = true
					break
				}
			}
			if !found {
				return nil, errLiftFails
			}
		}
		return la, nil
	})
	if errors.Is(err, errLiftFails) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	ctx.Deref(resultRoot)
	return true, nil
}

// witnessExists decides whether p ≼ q can still be justified: for every
// rule u containing p at some position i, some equal-arity rule v with
// v[i] = q must pass both the positional counter and the lift check.
func witnessExists(ctx *mtbdd.Context, rel *Relation, byArity map[int][]rule, p, q automaton.State) (bool, error) {
	for _, rules := range byArity {
		for _, u := range rules {
			for i, s := range u.lhs {
				if s != p {
					continue
				}
				witnessed, err := hasWitness(ctx, rel, rules, u, i, q)
				if err != nil {
					return false, err
				}
				if !witnessed {
					return false, nil
				}
			}
		}
	}
	return true, nil
}

func hasWitness(ctx *mtbdd.Context, rel *Relation, candidates []rule, u rule, i int, q automaton.State) (bool, error) {
	for _, v := range candidates {
		if v.lhs[i] != q {
			continue
		}
		if !counterFor(u, v, rel).AllPositive() {
			continue
		}
		ok, err := liftHolds(ctx, rel, u, v)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Compute returns the maximal simulation preorder of a (spec.md §4.7).
// Cancellation is checked once per refinement pass, mirroring how
// flow.Dinic checks its context between BFS phases rather than inside
// one; WithMaxIterations bounds the number of passes with
// ErrIterationLimit, and WithProgress is notified after every pass.
func Compute(a *automaton.Automaton, opts ...Option) (*Relation, error) {
	cfg := newConfig(opts...)
	ctx := a.Context()
	states := make([]automaton.State, 0, a.StateCount())
	for s := automaton.State(1); s <= automaton.State(a.StateCount()); s++ {
		states = append(states, s)
	}

	rel := newRelation()
	for _, p := range states {
		for _, q := range states {
			if a.IsFinal(p) && !a.IsFinal(q) {
				continue
			}
			rel.add(p, q)
		}
	}

	byArity, release := materializeRules(a)
	defer release()

	for pass := 1; ; pass++ {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}
		if cfg.maxIterations > 0 && pass > cfg.maxIterations {
			return nil, ErrIterationLimit
		}

		removed := 0
		for _, p := range states {
			for _, q := range slices.Clone(rel.SimulatedBy(p)) {
				witnessed, err := witnessExists(ctx, rel, byArity, p, q)
				if err != nil {
					return nil, err
				}
				if !witnessed {
					rel.remove(p, q)
					removed++
				}
			}
		}
		if cfg.onProgress != nil {
			cfg.onProgress(removed)
		}
		if removed == 0 {
			break
		}
	}

	return rel, nil
}
