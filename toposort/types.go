package toposort

import (
	"context"
	"errors"
)

// ErrCycleDetected indicates the dependency graph contains a directed
// cycle, so no valid linear order exists.
var ErrCycleDetected = errors.New("toposort: cycle detected")

// Traversal colors for cycle detection.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully processed
)

// Option adjusts the behavior of Sort.
type Option func(*options)

// options carries the resolved Sort configuration.
type options struct {
	ctx        context.Context
	cycleCheck bool
}

// defaultOptions returns the baseline configuration: background context,
// no post-pass verification.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithCancelContext makes Sort abort with ctx.Err() once ctx is done.
// Useful when sorting very large graphs under a deadline.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithCycleCheck re-verifies the finished order edge by edge, failing
// with ErrCycleDetected on any inversion. Structural detection during
// traversal always runs; this adds an independent O(V+E) validation of
// the emitted positions.
func WithCycleCheck() Option {
	return func(o *options) {
		o.cycleCheck = true
	}
}
