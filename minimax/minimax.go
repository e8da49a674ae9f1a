package minimax

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/internal/frontier"
)

// frame is one non-terminal vertex being evaluated.
type frame struct {
	id         string
	maximizing bool
	depth      int
	moves      []string // non-blocked targets in adjacency order
	next       int      // index of the next move to evaluate
	best       float64
}

// fold merges a child value into the frame.
func (f *frame) fold(v float64) {
	if f.maximizing {
		f.best = math.Max(f.best, v)
	} else {
		f.best = math.Min(f.best, v)
	}
}

// evaluator holds per-call state.
type evaluator struct {
	g      core.Reader
	opts   Options
	stack  *frontier.Stack[*frame]
	branch map[string]bool
}

// Evaluate returns the Minimax value of node when it is the maximizing
// player's turn (maximizing == true) or the minimizing player's.
//
// Errors: ErrGraphNil; core.ErrVertexNotFound; core.ErrMissingAnnotation
// (wrapped) for an unannotated vertex; ErrDepthExceeded; ErrOptionViolation;
// ctx.Err() on cancellation.
func Evaluate(g core.Reader, node string, maximizing bool, opts ...Option) (float64, error) {
	e, err := newEvaluator(g, node, opts)
	if err != nil {
		return 0, err
	}

	return e.evaluate(node, maximizing)
}

// BestMove scores every non-blocked move out of start for the maximizing
// player and returns the best one.
func BestMove(g core.Reader, start string, opts ...Option) (Move, error) {
	e, err := newEvaluator(g, start, opts)
	if err != nil {
		return noMove(), err
	}
	moves, err := e.moves(start)
	if err != nil {
		return noMove(), err
	}

	m := noMove()
	for _, to := range moves {
		e.branch = make(map[string]bool)
		v, err := e.evaluate(to, false)
		if err != nil {
			return noMove(), fmt.Errorf("minimax: move %s→%s: %w", start, to, err)
		}
		m.Candidates = append(m.Candidates, Candidate{To: to, Value: v})
		if v > m.Value {
			m.To, m.Value = to, v
		}
	}

	return m, nil
}

func newEvaluator(g core.Reader, node string, opts []Option) (*evaluator, error) {
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
	if !g.HasVertex(node) {
		return nil, fmt.Errorf("minimax: %w: %q", core.ErrVertexNotFound, node)
	}

	return &evaluator{
		g:      g,
		opts:   o,
		stack:  frontier.NewStack[*frame](),
		branch: make(map[string]bool),
	}, nil
}

// moves lists the non-blocked targets of id in adjacency order.
func (e *evaluator) moves(id string) ([]string, error) {
	edges, err := e.g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNeighbors, id, err)
	}
	out := make([]string, 0, len(edges))
	for _, ed := range edges {
		if !ed.Blocked {
			out = append(out, ed.To)
		}
	}

	return out, nil
}

// open either resolves id to a value directly (leaf) or pushes a frame for it.
func (e *evaluator) open(id string, maximizing bool, depth int) (value float64, leaf bool, err error) {
	if e.branch[id] {
		e.opts.OnLeaf(id, depth, 0)
		return 0, true, nil
	}
	ann, err := e.g.Annotation(id)
	if err != nil {
		return 0, false, fmt.Errorf("minimax: %q: %w", id, err)
	}
	if ann.Terminal {
		e.opts.OnLeaf(id, depth, ann.Utility)
		return ann.Utility, true, nil
	}
	if e.opts.MaxDepth > 0 && depth > e.opts.MaxDepth {
		return 0, false, fmt.Errorf("%w: %q at depth %d > %d", ErrDepthExceeded, id, depth, e.opts.MaxDepth)
	}

	moves, err := e.moves(id)
	if err != nil {
		return 0, false, err
	}
	f := &frame{id: id, maximizing: maximizing, depth: depth, moves: moves, best: math.Inf(1)}
	if maximizing {
		f.best = math.Inf(-1)
	}
	e.branch[id] = true
	e.stack.Push(f)

	return 0, false, nil
}

// evaluate drives the frame stack until the root value is known.
func (e *evaluator) evaluate(root string, maximizing bool) (float64, error) {
	v, leaf, err := e.open(root, maximizing, 0)
	if err != nil || leaf {
		return v, err
	}

	for {
		select {
		case <-e.opts.Ctx.Done():
			return 0, e.opts.Ctx.Err()
		default:
		}

		top, _ := e.stack.Peek()
		if top.next < len(top.moves) {
			child := top.moves[top.next]
			top.next++
			v, leaf, err := e.open(child, !top.maximizing, top.depth+1)
			if err != nil {
				return 0, err
			}
			if leaf {
				top.fold(v)
			}
			continue
		}

		// All moves evaluated: close the frame and hand its value up.
		done, _ := e.stack.Pop()
		delete(e.branch, done.id)
		parent, ok := e.stack.Peek()
		if !ok {
			return done.best, nil
		}
		parent.fold(done.best)
	}
}
