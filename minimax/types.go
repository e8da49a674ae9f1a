package minimax

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("minimax: graph is nil")

	// ErrDepthExceeded indicates that evaluation needed a frame deeper than
	// the configured MaxDepth.
	ErrDepthExceeded = errors.New("minimax: maximum depth exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("minimax: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("minimax: neighbor iteration error")
)

// Option configures Evaluate and BestMove.
type Option func(*Options)

// Options holds evaluation parameters.
type Options struct {
	// Ctx allows cancellation; checked once per stack step.
	Ctx context.Context

	// MaxDepth, if > 0, is the deepest non-terminal frame allowed; the
	// evaluated vertex sits at depth 0.
	MaxDepth int

	// OnLeaf is invoked for every value produced without opening a frame
	// (terminal utility or branch repeat).
	OnLeaf func(id string, depth int, value float64)

	err error
}

// DefaultOptions returns unlimited depth, a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnLeaf: func(string, int, float64) {},
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

// WithMaxDepth bounds the frame depth; 0 means unlimited and a negative
// value is an ErrOptionViolation.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithOnLeaf registers a hook for leaf values.
func WithOnLeaf(fn func(id string, depth int, value float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLeaf = fn
		}
	}
}

// Candidate is one scored move out of the start vertex.
type Candidate struct {
	To    string
	Value float64
}

// Move is the outcome of BestMove.
type Move struct {
	// To is the chosen neighbor, "" when no move improves on −Inf.
	To string

	// Value is the Minimax value of To.
	Value float64

	// Candidates lists every non-blocked move in adjacency order.
	Candidates []Candidate
}

// Found reports whether a move was chosen.
func (m Move) Found() bool { return m.To != "" }

// noMove is the result when nothing can be played.
func noMove() Move { return Move{Value: math.Inf(-1)} }
