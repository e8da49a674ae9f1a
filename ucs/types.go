package ucs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfarer/core"
)

// Sentinel errors returned by the ucs implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("ucs: graph is nil")

	// ErrOptionViolation wraps every invalid functional option.
	ErrOptionViolation = errors.New("ucs: invalid option supplied")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("ucs: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("ucs: InfEdgeThreshold must be positive")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("ucs: negative edge weight encountered")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("ucs: neighbor iteration error")
)

// Options configures the behavior of Search and MultiGoal.
//
// MaxDistance      – frontier entries costlier than this end the search. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped. Default +Inf.
type Options struct {
	Ctx              context.Context
	MaxDistance      float64
	InfEdgeThreshold float64
	SkipBlocked      bool
	OnExpand         func(id string, cost float64)

	err error
}

// Option represents a functional option for configuring ucs.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable
// threshold, blocked edges allowed and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnExpand:         func(string, float64) {},
	}
}

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum path cost. Negative values are rejected at
// call time with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %w (%v)", ErrOptionViolation, ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: %w (%v)", ErrOptionViolation, ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithSkipBlocked makes blocked edges impassable.
func WithSkipBlocked() Option {
	return func(o *Options) { o.SkipBlocked = true }
}

// WithOnExpand registers a hook called once per finalized vertex with its
// cost from the start.
func WithOnExpand(fn func(id string, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a single-goal search.
type Result struct {
	// Path from start to goal; nil when the goal is unreachable.
	Path core.Path

	// Cost is the sum of edge weights along Path, +Inf when unreachable.
	Cost float64

	// Expanded counts finalized vertices.
	Expanded int
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return r != nil && r.Path.Found() }

// Leg is one greedy step of a multi-goal tour.
type Leg struct {
	Goal string
	Path core.Path
	Cost float64
}

// MultiResult is the outcome of MultiGoal.
type MultiResult struct {
	// Path is the concatenated tour; nil if some goal is unreachable.
	Path core.Path

	// Cost is the total tour cost, +Inf if some goal is unreachable.
	Cost float64

	// Legs lists the completed steps in visiting order.
	Legs []Leg
}

// Found reports whether every goal was visited.
func (r *MultiResult) Found() bool { return r != nil && r.Path.Found() }

// Order returns the goals in the order they were visited.
func (r *MultiResult) Order() []string {
	out := make([]string, len(r.Legs))
	for i, l := range r.Legs {
		out[i] = l.Goal
	}

	return out
}
