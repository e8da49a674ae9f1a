package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/wayfarer/core"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("astar: neighbor iteration error")

	// ErrBadHeuristic indicates a heuristic returned NaN, a negative or an
	// infinite estimate.
	ErrBadHeuristic = errors.New("astar: heuristic must be finite and non-negative")
)

// Heuristic estimates the remaining cost from id to the goal.
type Heuristic func(id string) (float64, error)

// Options configures Search.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// Heuristic overrides the per-vertex values stored in the graph.
	Heuristic Heuristic

	// SkipBlocked treats blocked edges as absent.
	SkipBlocked bool

	// OnExpand is called for every non-stale popped entry.
	OnExpand func(id string, g, h float64)
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns Options that read heuristics from the graph.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, float64, float64) {},
	}
}

// WithContext sets the context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic substitutes h for the graph's stored heuristic values.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithSkipBlocked makes blocked edges impassable.
func WithSkipBlocked() Option {
	return func(o *Options) { o.SkipBlocked = true }
}

// WithOnExpand registers an expansion hook.
func WithOnExpand(fn func(id string, g, h float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of Search.
type Result struct {
	// Path from start to goal, nil when unreachable.
	Path core.Path

	// Cost is the sum of edge weights on Path, +Inf when unreachable.
	Cost float64

	// Expanded counts non-stale pops, reopened vertices included.
	Expanded int
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return r != nil && r.Path.Found() }
