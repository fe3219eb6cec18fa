// SPDX-License-Identifier: MIT
// Package: symta/simulation
//
// relation.go — Relation: the sparse boolean matrix spec.md §3 describes
// ("A set of ordered pairs of states ... the relation monotonically
// shrinks during refinement"). version is drawn from versionSeq when a
// Relation is created and again on every removal, so Compute can key its
// Apply2 calls by a value that changes whenever a cached lift-check
// result could go stale, including across Compute calls that share one
// mtbdd.Context (see compute.go).

package simulation

import (
	"slices"
	"sync/atomic"

	"github.com/katalvlaran/symta/automaton"
)

// versionSeq hands out Relation versions; no two Relations, nor two
// states of one Relation, share a version.
var versionSeq atomic.Int64

// Relation is a simulation preorder candidate: Simulates(p, q) reports
// whether p ≼ q currently holds.
type Relation struct {
	version int
	pairs   map[automaton.State]map[automaton.State]struct{}
}

func newRelation() *Relation {
	return &Relation{
		version: int(versionSeq.Add(1)),
		pairs:   make(map[automaton.State]map[automaton.State]struct{}),
	}
}

// Simulates reports whether p ≼ q holds in r.
func (r *Relation) Simulates(p, q automaton.State) bool {
	row, ok := r.pairs[p]
	if !ok {
		return false
	}
	_, ok = row[q]
	return ok
}

func (r *Relation) add(p, q automaton.State) {
	row, ok := r.pairs[p]
	if !ok {
		row = make(map[automaton.State]struct{})
		r.pairs[p] = row
	}
	row[q] = struct{}{}
}

func (r *Relation) remove(p, q automaton.State) {
	if row, ok := r.pairs[p]; ok {
		delete(row, q)
	}
	r.version = int(versionSeq.Add(1))
}

// SimulatedBy returns every q with p ≼ q, in ascending order.
func (r *Relation) SimulatedBy(p automaton.State) []automaton.State {
	row := r.pairs[p]
	out := make([]automaton.State, 0, len(row))
	for q := range row {
		out = append(out, q)
	}
	slices.Sort(out)
	return out
}

// Subsumes implements the forall-exists lift spec.md §4.8 requires for
// antichain subsumption: S ⊑ T iff every s in S has some t in T with
// s ≼ t.
func (r *Relation) Subsumes(s, t []automaton.State) bool {
	for _, a := range s {
		found := false
		for _, b := range t {
			if r.Simulates(a, b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
