// SPDX-License-Identifier: MIT
// Package: symta/inclusion
//
// options.go — functional options for Included, mirroring
// simulation.Option's shape. The proof search's natural pass boundary
// is one top-level final-state obligation (the outer loop in
// Included), so cancellation and the iteration cap are both checked
// there, between obligations rather than inside decide's recursion.

package inclusion

import "context"

// ProgressFunc is called once per top-level final-state obligation
// Included discharges, with the count discharged so far.
type ProgressFunc func(discharged int)

type config struct {
	ctx           context.Context
	maxIterations int
	onProgress    ProgressFunc
}

// Option configures an Included call.
type Option func(*config)

// WithContext threads a cancellation/deadline context through the
// proof search. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("inclusion: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithMaxIterations caps the number of top-level final-state
// obligations Included will discharge before giving up with
// ErrIterationLimit. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("inclusion: WithMaxIterations(n<=0)")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithProgress attaches an optional per-obligation observability hook.
// Panics on nil.
func WithProgress(fn ProgressFunc) Option {
	if fn == nil {
		panic("inclusion: WithProgress(nil)")
	}
	return func(c *config) { c.onProgress = fn }
}

func newConfig(opts ...Option) config {
	cfg := config{ctx: context.Background(), maxIterations: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
