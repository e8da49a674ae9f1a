package ucs

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/internal/frontier"
)

// item is a frontier entry: a partial path and its cumulative cost.
type item struct {
	cost float64
	path core.Path
}

// lessItem orders by cost, then lexicographically by path.
func lessItem(a, b item) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}

	return slices.Compare(a.path, b.path) < 0
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       core.Reader
	opts    Options
	goal    string
	pq      *frontier.Heap[item]
	visited map[string]bool
	res     *Result
}

// Search returns the cheapest path from start to goal in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must exist (core.ErrVertexNotFound).
//
// An unreachable goal is not an error: Path is nil and Cost is +Inf.
func Search(g core.Reader, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = requireVertex(g, "start", start); err != nil {
		return nil, err
	}
	if err = requireVertex(g, "goal", goal); err != nil {
		return nil, err
	}

	return search(g, cfg, start, goal)
}

func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

func requireVertex(g core.Reader, role, id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("ucs: %s: %w: %q", role, core.ErrVertexNotFound, id)
	}

	return nil
}

// search runs the main loop on already validated input.
func search(g core.Reader, cfg Options, start, goal string) (*Result, error) {
	r := &runner{
		g:       g,
		opts:    cfg,
		goal:    goal,
		pq:      frontier.NewHeap[item](lessItem),
		visited: make(map[string]bool),
		res:     &Result{Cost: math.Inf(1)},
	}
	r.pq.Push(item{cost: 0, path: core.Path{start}})
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// process pops entries until the goal is finalized, the heap is empty or
// the cheapest entry exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		cur, _ := r.pq.Pop()
		if cur.cost > r.opts.MaxDistance {
			return nil
		}
		node := cur.path.Last()
		if r.visited[node] {
			continue
		}
		r.visited[node] = true
		r.res.Expanded++
		r.opts.OnExpand(node, cur.cost)

		if node == r.goal {
			r.res.Path = cur.path
			r.res.Cost = cur.cost
			return nil
		}
		if err := r.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes cur.path+[nbr] for every passable unvisited neighbor.
func (r *runner) relax(cur item) error {
	node := cur.path.Last()
	edges, err := r.g.Neighbors(node)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNeighbors, node, err)
	}
	for _, e := range edges {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if e.Weight >= r.opts.InfEdgeThreshold || (r.opts.SkipBlocked && e.Blocked) {
			continue
		}
		if r.visited[e.To] {
			continue
		}
		r.pq.Push(item{cost: cur.cost + e.Weight, path: cur.path.Extend(e.To)})
	}

	return nil
}
