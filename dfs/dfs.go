package dfs

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/internal/frontier"
)

// dfsWalker encapsulates state during a single Search call.
type dfsWalker struct {
	graph   core.Reader                // underlying graph
	opts    Options                    // search options
	goal    string                     // target vertex
	stack   *frontier.Stack[core.Path] // partial paths, top = most recent
	visited map[string]bool            // expanded vertices
	res     *Result                    // result collector
}

// Search performs depth-first search on g from start and returns the first
// path whose last vertex is goal. An unreachable goal yields a Result with a
// nil Path and a nil error.
func Search(g core.Reader, start, goal string, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Validate endpoints
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("dfs: start: %w: %q", core.ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("dfs: goal: %w: %q", core.ErrVertexNotFound, goal)
	}

	// 4. Run
	w := &dfsWalker{
		graph:   g,
		opts:    o,
		goal:    goal,
		stack:   frontier.NewStack[core.Path](),
		visited: make(map[string]bool),
		res:     &Result{},
	}
	w.push(core.Path{start})
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

func (w *dfsWalker) push(p core.Path) {
	w.stack.Push(p)
	w.res.Pushed++
}

// run pops paths until the goal surfaces or the stack is empty.
func (w *dfsWalker) run() error {
	for w.stack.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		path, _ := w.stack.Pop()
		node := path.Last()
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
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", node, err)
		}
		if w.opts.MaxDepth > 0 && path.Hops() >= w.opts.MaxDepth {
			continue
		}

		edges, err := w.graph.Neighbors(node)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrNeighbors, node, err)
		}
		for _, e := range edges {
			if w.opts.SkipBlocked && e.Blocked {
				continue
			}
			if w.visited[e.To] || !w.opts.FilterNeighbor(node, e.To) {
				continue
			}
			w.push(path.Extend(e.To))
		}
	}

	return nil
}
