// File: methods_vertices.go
// Role: Vertex lifecycle, annotation lookups and graph-wide policy queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Every method takes g.mu (read lock for queries, write lock for mutation).
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing and applies the annotation options.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject mutation of a sealed graph.
//   - Stage 3: Allocate the vertex if absent, then apply opts in order.
//
// Behavior highlights:
//   - Idempotent on presence: re-adding an existing ID keeps its edges and
//     only merges the new annotations, so loaders may annotate in a second pass.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrSealed: if Seal was called.
//
// Complexity:
//   - Time O(len(opts)), Space O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sealed {
		return fmt.Errorf("%w: AddVertex(%q)", ErrSealed, id)
	}
	v := g.ensureVertex(id)
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// ensureVertex returns the vertex for id, creating it when missing.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertices[id] = v
	g.adjacency[id] = nil

	return v
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record, Metadata included.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	cp := *v
	cp.Metadata = make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		cp.Metadata[k] = val
	}

	return cp, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Heuristic returns the static A* estimate stored on id.
//
// Errors:
//   - ErrVertexNotFound: id is not a vertex.
//   - ErrMissingHeuristic: the vertex was added without WithHeuristic.
func (g *Graph) Heuristic(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if !v.HasHeuristic {
		return 0, fmt.Errorf("%w: %q", ErrMissingHeuristic, id)
	}

	return v.Heuristic, nil
}

// Annotation returns the Minimax terminal flag and utility of id.
//
// Errors:
//   - ErrVertexNotFound: id is not a vertex.
//   - ErrMissingAnnotation: the vertex was added without WithTerminal/WithNonTerminal.
func (g *Graph) Annotation(id string) (Annotation, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Annotation{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if !v.Annotated {
		return Annotation{}, fmt.Errorf("%w: %q", ErrMissingAnnotation, id)
	}

	return Annotation{Terminal: v.Terminal, Utility: v.Utility}, nil
}

// Seal freezes the graph. Subsequent AddVertex/AddEdge calls fail with ErrSealed.
// Sealing twice is a no-op.
func (g *Graph) Seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// Sealed reports whether Seal has been called.
func (g *Graph) Sealed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sealed
}

// Directed reports the graph-wide default directedness applied to new edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
