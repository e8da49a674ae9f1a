package core

import (
	"fmt"
	"math"
	"strings"
)

// Path is an ordered walk of vertex IDs from a start to a goal.
//
// The nil (or empty) Path is the "no path found" sentinel: searches return
// it, never an error, when the goal is unreachable.
type Path []string

// Found reports whether the path is non-empty.
func (p Path) Found() bool { return len(p) > 0 }

// Hops returns the number of edges on the path (0 for a single vertex or no path).
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Last returns the final vertex ID, or "" for the empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Extend returns a fresh path with id appended; p is never aliased.
func (p Path) Extend(id string) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = id

	return next
}

// String renders "A -> B -> C", or "<no path>".
func (p Path) String() string {
	if len(p) == 0 {
		return "<no path>"
	}

	return strings.Join(p, " -> ")
}

// ValidatePath checks that every vertex exists and each consecutive pair
// is joined by an edge. The empty path is valid.
func ValidatePath(r Reader, p Path) error {
	_, err := PathCost(r, p)

	return err
}

// PathCost sums the edge weights along p, taking the cheapest parallel edge
// between each pair. The empty path costs +Inf; a single vertex costs 0.
//
// Errors:
//   - ErrVertexNotFound: a path vertex is not in r.
//   - ErrNotAdjacent: two consecutive vertices share no edge.
func PathCost(r Reader, p Path) (float64, error) {
	if len(p) == 0 {
		return math.Inf(1), nil
	}
	if !r.HasVertex(p[0]) {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, p[0])
	}

	var total float64
	for i := 0; i+1 < len(p); i++ {
		edges, err := r.Neighbors(p[i])
		if err != nil {
			return 0, err
		}
		if !r.HasVertex(p[i+1]) {
			return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, p[i+1])
		}
		best := math.Inf(1)
		for _, e := range edges {
			if e.To == p[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		if math.IsInf(best, 1) {
			return 0, fmt.Errorf("%w: %s→%s", ErrNotAdjacent, p[i], p[i+1])
		}
		total += best
	}

	return total, nil
}
