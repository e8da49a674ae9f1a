// Package bfs provides breadth-first path search over a core.Reader.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/internal/frontier"
)

// walker encapsulates mutable BFS state for a single Search call.
type walker struct {
	graph   core.Reader
	opts    Options
	ctx     context.Context
	goal    string
	queue   *frontier.Queue[core.Path]
	visited map[string]bool
	res     *Result
}

// Search runs breadth-first search on g from start until a path ending at
// goal is popped or the queue is exhausted.
//
// Returns ErrGraphNil or core.ErrVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or any OnVisit error. An unreachable goal is
// not an error: the Result has a nil Path.
func Search(g core.Reader, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start: %w: %q", core.ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("bfs: goal: %w: %q", core.ErrVertexNotFound, goal)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		goal:    goal,
		queue:   frontier.NewQueue[core.Path](),
		visited: make(map[string]bool),
		res:     &Result{},
	}
	w.enqueue(core.Path{start})

	return w.res, w.loop()
}

// enqueue pushes p and fires OnEnqueue.
func (w *walker) enqueue(p core.Path) {
	w.opts.OnEnqueue(p.Last(), p.Hops())
	w.queue.Push(p)
	w.res.Pushed++
}

// loop processes the queue until the goal is popped, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for w.queue.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		path, _ := w.queue.Pop()
		node := path.Last()
		w.opts.OnDequeue(node, path.Hops())

		if node == w.goal {
			w.res.Path = path
			return nil
		}
		if w.visited[node] {
			continue
		}
		w.visited[node] = true
		w.res.Order = append(w.res.Order, node)
		if err := w.opts.OnVisit(node, path.Hops()); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", node, err)
		}

		if w.opts.MaxDepth > 0 && path.Hops() >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(path); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes path+[neighbor] for every admissible unvisited neighbor.
func (w *walker) expand(path core.Path) error {
	node := path.Last()
	edges, err := w.graph.Neighbors(node)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %w", ErrNeighbors, node, err)
	}
	for _, e := range edges {
		if w.opts.SkipBlocked && e.Blocked {
			continue
		}
		if !w.opts.FilterNeighbor(node, e.To) {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(path.Extend(e.To))
		}
	}

	return nil
}
