package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/internal/frontier"
)

// node is a heap entry.
type node struct {
	id   string
	g, h float64
}

func (n node) f() float64 { return n.g + n.h }

func lessNode(a, b node) bool {
	if fa, fb := a.f(), b.f(); fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.id < b.id
}

// searcher holds per-call state.
type searcher struct {
	g    core.Reader
	opts Options
	h    Heuristic
	goal string
	open *frontier.Heap[node]
	best map[string]float64
	pred map[string]string
	res  *Result
}

// Search finds a cheapest path from start to goal.
//
// Errors: ErrNilGraph; core.ErrVertexNotFound for unknown endpoints;
// core.ErrMissingHeuristic (wrapped) when a reached vertex has no heuristic
// and none was supplied; ErrBadHeuristic for NaN, negative or infinite
// estimates; ctx.Err() on cancellation.
func Search(g core.Reader, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("astar: start: %w: %q", core.ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("astar: goal: %w: %q", core.ErrVertexNotFound, goal)
	}

	s := &searcher{
		g:    g,
		opts: o,
		h:    o.Heuristic,
		goal: goal,
		open: frontier.NewHeap[node](lessNode),
		best: map[string]float64{start: 0},
		pred: make(map[string]string),
		res:  &Result{Cost: math.Inf(1)},
	}
	if s.h == nil {
		s.h = g.Heuristic
	}

	h0, err := s.estimate(start)
	if err != nil {
		return nil, err
	}
	s.open.Push(node{id: start, g: 0, h: h0})
	if err = s.run(); err != nil {
		return nil, err
	}

	return s.res, nil
}

// estimate evaluates the heuristic and checks its range.
func (s *searcher) estimate(id string) (float64, error) {
	h, err := s.h(id)
	if err != nil {
		return 0, fmt.Errorf("astar: heuristic for %q: %w", id, err)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, fmt.Errorf("%w: h(%q)=%v", ErrBadHeuristic, id, h)
	}

	return h, nil
}

func (s *searcher) run() error {
	for s.open.Len() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		cur, _ := s.open.Pop()
		if cur.g > s.best[cur.id] {
			continue // stale
		}
		s.res.Expanded++
		s.opts.OnExpand(cur.id, cur.g, cur.h)

		if cur.id == s.goal {
			s.res.Path = s.reconstruct()
			s.res.Cost = cur.g
			return nil
		}
		if err := s.relax(cur); err != nil {
			return err
		}
	}

	return nil
}

func (s *searcher) relax(cur node) error {
	edges, err := s.g.Neighbors(cur.id)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNeighbors, cur.id, err)
	}
	for _, e := range edges {
		if s.opts.SkipBlocked && e.Blocked {
			continue
		}
		tentative := cur.g + e.Weight
		if old, ok := s.best[e.To]; ok && tentative >= old {
			continue
		}
		h, err := s.estimate(e.To)
		if err != nil {
			return err
		}
		s.best[e.To] = tentative
		s.pred[e.To] = cur.id
		s.open.Push(node{id: e.To, g: tentative, h: h})
	}

	return nil
}

// reconstruct walks pred from the goal back to the start.
func (s *searcher) reconstruct() core.Path {
	var rev []string
	for v := s.goal; ; {
		rev = append(rev, v)
		p, ok := s.pred[v]
		if !ok {
			break
		}
		v = p
	}
	path := make(core.Path, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}
