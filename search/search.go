// Package search selects one of the path-finding strategies by name and
// runs it with a uniform result shape.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/wayfarer/astar"
	"github.com/katalvlaran/wayfarer/bfs"
	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/dfs"
	"github.com/katalvlaran/wayfarer/ucs"
)

// ErrInvalidStrategy indicates an unknown strategy name.
var ErrInvalidStrategy = errors.New("search: invalid strategy")

// Strategy identifies a path-finding algorithm.
type Strategy string

// Supported strategies.
const (
	BFS   Strategy = "bfs"
	DFS   Strategy = "dfs"
	UCS   Strategy = "ucs"
	AStar Strategy = "astar"
)

// Strategies lists every supported strategy in a stable order.
func Strategies() []Strategy { return []Strategy{BFS, DFS, UCS, AStar} }

var aliases = map[string]Strategy{
	"bfs":           BFS,
	"breadth-first": BFS,
	"dfs":           DFS,
	"depth-first":   DFS,
	"ucs":           UCS,
	"uniform-cost":  UCS,
	"astar":         AStar,
	"a*":            AStar,
	"a-star":        AStar,
}

// ParseStrategy maps a case-insensitive name or alias to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: %q (want one of bfs, dfs, ucs, astar)", ErrInvalidStrategy, name)
}

// Option tunes Find.
type Option func(*options)

type options struct {
	skipBlocked bool
	heuristic   astar.Heuristic
}

// WithSkipBlocked makes every strategy treat blocked edges as absent.
func WithSkipBlocked() Option {
	return func(o *options) { o.skipBlocked = true }
}

// WithHeuristic replaces the stored heuristic for AStar. Other strategies
// ignore it.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *options) { o.heuristic = h }
}

// Outcome is the strategy-independent result of Find.
type Outcome struct {
	Strategy Strategy
	Path     core.Path

	// Cost is the weight of Path, +Inf when no path was found. For BFS and
	// DFS it is computed after the fact; use Path.Hops() for the edge count.
	Cost float64

	Found bool
}

// Find runs strategy s from start to goal on g.
func Find(ctx context.Context, g core.Reader, s Strategy, start, goal string, opts ...Option) (*Outcome, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := &Outcome{Strategy: s, Cost: math.Inf(1)}
	switch s {
	case BFS:
		bopts := []bfs.Option{bfs.WithContext(ctx)}
		if o.skipBlocked {
			bopts = append(bopts, bfs.WithSkipBlocked())
		}
		res, err := bfs.Search(g, start, goal, bopts...)
		if err != nil {
			return nil, err
		}
		out.Path = res.Path
	case DFS:
		dopts := []dfs.Option{dfs.WithContext(ctx)}
		if o.skipBlocked {
			dopts = append(dopts, dfs.WithSkipBlocked())
		}
		res, err := dfs.Search(g, start, goal, dopts...)
		if err != nil {
			return nil, err
		}
		out.Path = res.Path
	case UCS:
		uopts := []ucs.Option{ucs.WithContext(ctx)}
		if o.skipBlocked {
			uopts = append(uopts, ucs.WithSkipBlocked())
		}
		res, err := ucs.Search(g, start, goal, uopts...)
		if err != nil {
			return nil, err
		}
		out.Path, out.Cost = res.Path, res.Cost
	case AStar:
		aopts := []astar.Option{astar.WithContext(ctx)}
		if o.skipBlocked {
			aopts = append(aopts, astar.WithSkipBlocked())
		}
		if o.heuristic != nil {
			aopts = append(aopts, astar.WithHeuristic(o.heuristic))
		}
		res, err := astar.Search(g, start, goal, aopts...)
		if err != nil {
			return nil, err
		}
		out.Path, out.Cost = res.Path, res.Cost
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, string(s))
	}

	out.Found = out.Path.Found()
	if out.Found && (s == BFS || s == DFS) {
		cost, err := core.PathCost(g, out.Path)
		if err != nil {
			return nil, fmt.Errorf("search: cost of %s path: %w", s, err)
		}
		out.Cost = cost
	}

	return out, nil
}
