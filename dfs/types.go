// Package dfs defines types and options for depth-first path search,
// including cancellation, a pre-order hook, depth limiting and neighbor
// filtering.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dfs: neighbor iteration error")
)

// Option configures optional behavior of DFS.
type Option func(*Options)

// Options holds configurable parameters for DFS.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a vertex is expanded for the first time.
	// Returning an error aborts the search with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops extending paths that already have MaxDepth edges.
	MaxDepth int

	// FilterNeighbor is called for every curr→neighbor pair before the push.
	// Return true to keep the neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// SkipBlocked treats core.Edge.Blocked edges as absent.
	SkipBlocked bool

	err error
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
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

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits path length to limit edges; 0 disables the limit and
// a negative value is an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithSkipBlocked makes the search ignore blocked edges.
func WithSkipBlocked() Option {
	return func(o *Options) { o.SkipBlocked = true }
}

// Result contains the outcome of a DFS path search.
type Result struct {
	// Path is the first start→goal path found, nil if the goal is unreachable.
	Path core.Path

	// Order lists vertices in the order they were expanded.
	Order []string

	// Pushed counts paths pushed onto the stack, the start included.
	Pushed int
}

// Found reports whether a path to the goal was found.
func (r *Result) Found() bool { return r != nil && r.Path.Found() }
