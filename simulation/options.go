// SPDX-License-Identifier: MIT
// Package: symta/simulation
//
// options.go — functional options for Compute, following the same
// unexported-config shape mtbdd.Context's options use. Cancellation is
// threaded through the refinement loop the way flow.Dinic threads
// FlowOptions.Ctx through its augmenting-path loop — checked once per
// outer pass, not mid-pass, matching spec.md §5's "termination between
// top-level iterations is safe" contract.

package simulation

import "context"

// ProgressFunc is called once per completed refinement pass, with the
// number of pairs removed that pass (0 on the final, convergent pass).
type ProgressFunc func(removed int)

type config struct {
	ctx           context.Context
	maxIterations int
	onProgress    ProgressFunc
}

// Option configures a Compute call.
type Option func(*config)

// WithContext threads a cancellation/deadline context through the
// refinement loop. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("simulation: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithMaxIterations caps the number of refinement passes Compute will
// run before giving up with ErrIterationLimit. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic("simulation: WithMaxIterations(n<=0)")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithProgress attaches an optional per-pass observability hook, the
// collaborator-instead-of-a-logger shape spec.md §9 calls for. Panics
// on nil.
func WithProgress(fn ProgressFunc) Option {
	if fn == nil {
		panic("simulation: WithProgress(nil)")
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
