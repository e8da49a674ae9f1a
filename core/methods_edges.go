// File: methods_edges.go
// Role: Edge lifecycle and neighborhood queries.
//
// Determinism:
//   - Edge IDs are allocated "e1", "e2", ... in AddEdge call order.
//   - Neighbors(id) and Edges() follow insertion order.
package core

import (
	"fmt"
	"math"
	"strconv"
)

// AddEdge creates a new edge from→to with the given weight.
//
// Implementation:
//   - Stage 1: Validate IDs and weight (finite, non-negative).
//   - Stage 2: Under the write lock, reject sealed graphs, loops and
//     parallel edges according to policy; resolve endpoints (strict mode
//     refuses undeclared ones, lenient mode creates them).
//   - Stage 3: Append the canonical edge and its oriented half-edges.
//
// Behavior highlights:
//   - Undirected edges are stored in both directions so Neighbors(to)
//     reports the edge oriented to→from.
//   - Per-edge direction overrides require WithMixedEdges.
//
// Returns:
//   - string: the new edge ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrNegativeWeight, ErrSealed,
//     ErrVertexNotFound (strict mode), ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
//
// Complexity:
//   - Time O(deg(from)) for the parallel-edge check, Space O(1).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return "", fmt.Errorf("%w: AddEdge(%q, %q)", ErrSealed, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	if e.Directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if g.strict {
		for _, id := range [...]string{from, to} {
			if _, ok := g.vertices[id]; !ok {
				return "", fmt.Errorf("%w: %q", ErrVertexNotFound, id)
			}
		}
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	g.nextEdgeID++
	e.ID = "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges = append(g.edges, e)

	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		mirror := *e
		mirror.From, mirror.To = to, from
		g.adjacency[to] = append(g.adjacency[to], &mirror)
	}

	return e.ID, nil
}

// hasEdgeLocked reports whether a traversable edge from→to exists.
// Caller must hold g.mu.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasEdge reports whether from→to can be traversed.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Neighbors returns copies of the edges leaving id, oriented id→neighbor,
// in insertion order. Blocked edges are included; callers decide whether
// to honor the flag.
//
// Errors:
//   - ErrVertexNotFound: id is not a vertex.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	half := g.adjacency[id]
	out := make([]Edge, len(half))
	for i, e := range half {
		out[i] = *e
	}

	return out, nil
}

// NeighborIDs returns the distinct neighbor IDs of id in first-seen order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if !seen[e.To] {
			seen[e.To] = true
			ids = append(ids, e.To)
		}
	}

	return ids, nil
}

// Edges returns copies of all canonical edges in insertion order.
// An undirected edge appears once, oriented as it was added.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the number of canonical edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
