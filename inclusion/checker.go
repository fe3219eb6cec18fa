// SPDX-License-Identifier: MIT
// Package: symta/inclusion
//
// checker.go — Included: the antichain proof search spec.md §4.8
// describes. A configuration is a pair (q, S): a single small-automaton
// state and a set of big-automaton states. decide resolves a
// configuration against three caches, in the order spec.md gives them:
// the in-progress Workset (assume success on a subsuming cycle), the
// Included memo, then the Non-included memo — falling through to
// expand only when none applies, and caching expand's verdict
// afterwards. Every cache comparison is a subsumption check between two
// state sets recorded for the SAME q (a cached S' subsumed by S for the
// Workset and Included memo, S subsumed by a cached S' for the
// Non-included memo): S' is subsumed by S when every state in S' has a
// simulation-dominating state in S, via the preorder
// simulation.Compute computes over big alone. That preorder relates
// two of big's own states — it never compares a small-automaton state
// against a big-automaton one, since the two automata's states are
// produced by unrelated rule sets and a direct cross-comparison would
// not be sound; only the subsumption direction (big-side state a
// dominated by big-side state b, used monotonically as expand grows
// the candidate sets it recurses on) is.
//
// expand turns a configuration into the And-of-Or obligation spec.md's
// five-step Expansion describes: one obligation per (arity, symbol)
// group where the small automaton has a rule producing q, each
// satisfied only if the big automaton has a matching rule reachable
// from S and every one of that rule's positions is, in turn, Included.
package inclusion

import (
	"fmt"

	"github.com/katalvlaran/symta/automaton"
	"github.com/katalvlaran/symta/leafset"
	"github.com/katalvlaran/symta/mtbdd"
	"github.com/katalvlaran/symta/simulation"
)

// Checker holds the state a single Included call threads through its
// recursive proof search: the relation over big's own states and both
// automata's rules, materialised once, plus the three configuration
// caches spec.md's Expansion procedure maintains.
type Checker struct {
	rel    *simulation.Relation
	aRules map[int]map[string][]rule
	bRules map[int]map[string][]rule

	included    map[automaton.State][]leafset.Set[automaton.State]
	nonincluded map[automaton.State][]leafset.Set[automaton.State]
	workset     map[automaton.State][]leafset.Set[automaton.State]
}

// Included reports whether small's language is a subset of big's
// language, bottom-up (spec.md §4.8). width is the number of symbol
// variables both automata's rules are indexed over; small and big must
// share an mtbdd.Context. WithContext threads cancellation through the
// top-level obligation loop; WithMaxIterations bounds how many
// final-state obligations are discharged before giving up with
// ErrIterationLimit.
func Included(small, big *automaton.Automaton, width int, opts ...Option) (bool, error) {
	cfg := newConfig(opts...)

	if small.Context() != big.Context() {
		return false, fmt.Errorf("inclusion: Included: %w", mtbdd.ErrContextMismatch)
	}

	rel, err := simulation.Compute(big)
	if err != nil {
		return false, err
	}

	aRules, err := materializeRules(small, width)
	if err != nil {
		return false, err
	}
	bRules, err := materializeRules(big, width)
	if err != nil {
		return false, err
	}

	c := &Checker{
		rel:         rel,
		aRules:      aRules,
		bRules:      bRules,
		included:    make(map[automaton.State][]leafset.Set[automaton.State]),
		nonincluded: make(map[automaton.State][]leafset.Set[automaton.State]),
		workset:     make(map[automaton.State][]leafset.Set[automaton.State]),
	}

	bigInit := big.FinalStates()
	for i, q := range small.FinalStates() {
		if err := cfg.ctx.Err(); err != nil {
			return false, err
		}
		if cfg.maxIterations > 0 && i >= cfg.maxIterations {
			return false, ErrIterationLimit
		}

		ok, err := c.decide(q, bigInit)
		if err != nil {
			return false, err
		}
		if cfg.onProgress != nil {
			cfg.onProgress(i + 1)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// decide resolves whether the small-automaton language rooted at q is
// included in the union of big-automaton languages rooted at the
// states in s (spec.md §4.8's configuration (q, S)).
func (c *Checker) decide(q automaton.State, s []automaton.State) (bool, error) {
	S := leafset.Of(s...)

	for _, prior := range c.workset[q] {
		if c.rel.Subsumes(prior.Items(), S.Items()) {
			return true, nil
		}
	}
	for _, prior := range c.included[q] {
		if c.rel.Subsumes(prior.Items(), S.Items()) {
			return true, nil
		}
	}
	for _, prior := range c.nonincluded[q] {
		if c.rel.Subsumes(S.Items(), prior.Items()) {
			return false, nil
		}
	}

	c.workset[q] = append(c.workset[q], S)
	ok, err := c.expand(q, S.Items())
	c.workset[q] = c.workset[q][:len(c.workset[q])-1]
	if err != nil {
		return false, err
	}

	if ok {
		c.included[q] = append(c.included[q], S)
	} else {
		c.nonincluded[q] = append(c.nonincluded[q], S)
	}
	return ok, nil
}

// expand is spec.md §4.8's Expansion: an And over every (arity, symbol)
// group in which the small automaton has at least one rule producing
// q. Each group fails outright if no big-automaton rule of the same
// arity and symbol is reachable from S; otherwise every small rule in
// the group must, at every position, recurse into an Included
// configuration built from the union of all matching big rules' states
// at that position.
func (c *Checker) expand(q automaton.State, s []automaton.State) (bool, error) {
	for arity, bySymbol := range c.aRules {
		for symbol, smallRules := range bySymbol {
			producing := rulesProducing(smallRules, q)
			if len(producing) == 0 {
				continue
			}

			bigRules := c.bRules[arity][symbol]
			candidates := rulesReachableFrom(bigRules, s)
			if len(candidates) == 0 {
				return false, nil
			}

			for _, u := range producing {
				for i := range u.lhs {
					si := positionUnion(candidates, i)
					ok, err := c.decide(u.lhs[i], si)
					if err != nil {
						return false, err
					}
					if !ok {
						return false, nil
					}
				}
			}
		}
	}
	return true, nil
}

// rulesProducing returns the rules among rs whose successor set
// contains q.
func rulesProducing(rs []rule, q automaton.State) []rule {
	var out []rule
	for _, r := range rs {
		if containsState(r.succ, q) {
			out = append(out, r)
		}
	}
	return out
}

// rulesReachableFrom returns the rules among rs whose successor set
// intersects s.
func rulesReachableFrom(rs []rule, s []automaton.State) []rule {
	var out []rule
	for _, r := range rs {
		if intersectsStates(r.succ, s) {
			out = append(out, r)
		}
	}
	return out
}

// positionUnion collects the i'th LHS state of every rule in rs, in rule
// order; duplicates are kept (decide canonicalises the set via
// leafset.Of).
func positionUnion(rs []rule, i int) []automaton.State {
	out := make([]automaton.State, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.lhs[i])
	}
	return out
}

func containsState(haystack []automaton.State, needle automaton.State) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func intersectsStates(a, b []automaton.State) bool {
	for _, s := range a {
		if containsState(b, s) {
			return true
		}
	}
	return false
}
