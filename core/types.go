// Package core defines the central Graph, Vertex, and Edge types.
//
// This file declares Vertex, Edge, Annotation, Graph, the option types,
// sentinel errors, the Reader contract and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")

	// ErrSealed indicates a mutation attempted after Seal.
	ErrSealed = errors.New("core: graph is sealed")

	// ErrMissingHeuristic indicates a vertex carries no heuristic value.
	ErrMissingHeuristic = errors.New("core: vertex has no heuristic")

	// ErrMissingAnnotation indicates a vertex carries no terminal/utility annotation.
	ErrMissingAnnotation = errors.New("core: vertex has no terminal annotation")

	// ErrNotAdjacent indicates two consecutive path vertices share no edge.
	ErrNotAdjacent = errors.New("core: vertices are not adjacent")
)

// Vertex represents a node in the graph together with its static annotations.
//
// Callers only ever receive copies of a Vertex; the Graph owns the original.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Heuristic is the A* estimate of the remaining cost. Valid if HasHeuristic.
	Heuristic    float64
	HasHeuristic bool

	// Terminal and Utility describe the vertex for Minimax. Valid if Annotated.
	Terminal  bool
	Utility   float64
	Annotated bool

	// Metadata stores arbitrary table data (region, population, ...).
	Metadata map[string]interface{}
}

// Annotation is the Minimax view of a vertex.
type Annotation struct {
	// Terminal vertices are never expanded.
	Terminal bool

	// Utility is meaningful only when Terminal is true.
	Utility float64
}

// Edge represents a connection between two vertices.
//
// Edges returned by Neighbors are oriented from the queried vertex: From is
// always the queried ID and To the neighbor, even for undirected edges.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	// Both orientations of an undirected edge share the same ID.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative travel cost.
	Weight float64

	// Directed indicates this edge is one-way.
	Directed bool

	// Blocked marks the edge unusable for adversarial traversal.
	Blocked bool
}

// Reader is the read-only surface search algorithms depend on.
type Reader interface {
	// HasVertex reports whether id is a vertex of the graph.
	HasVertex(id string) bool

	// Vertices returns all vertex IDs sorted ascending.
	Vertices() []string

	// Neighbors returns the edges leaving id in insertion order.
	Neighbors(id string) ([]Edge, error)

	// Heuristic returns the static A* estimate stored on id.
	Heuristic(id string) (float64, error)

	// Annotation returns the Minimax terminal/utility data of id.
	Annotation(id string) (Annotation, error)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// WithStrictVertices makes AddEdge fail with ErrVertexNotFound instead of
// creating missing endpoints. Table loaders use it to reject typos.
func WithStrictVertices() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithBlocked marks the edge as blocked.
func WithBlocked() EdgeOption {
	return func(e *Edge) { e.Blocked = true }
}

// VertexOption annotates a vertex when it is added.
type VertexOption func(*Vertex)

// WithHeuristic stores the A* estimate h on the vertex.
func WithHeuristic(h float64) VertexOption {
	return func(v *Vertex) {
		v.Heuristic = h
		v.HasHeuristic = true
	}
}

// WithTerminal marks the vertex terminal with the given utility.
func WithTerminal(utility float64) VertexOption {
	return func(v *Vertex) {
		v.Terminal = true
		v.Utility = utility
		v.Annotated = true
	}
}

// WithNonTerminal marks the vertex as an inner Minimax node.
func WithNonTerminal() VertexOption {
	return func(v *Vertex) {
		v.Terminal = false
		v.Utility = 0
		v.Annotated = true
	}
}

// WithMetadata merges key/value pairs into the vertex Metadata.
func WithMetadata(meta map[string]interface{}) VertexOption {
	return func(v *Vertex) {
		for k, val := range meta {
			v.Metadata[k] = val
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// mu guards every field below it. nextEdgeID is only touched under mu.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // default directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge direction overrides
	strict     bool // AddEdge requires declared endpoints
	sealed     bool // no further mutation

	// Storage
	nextEdgeID uint64
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      []*Edge            // canonical edges in insertion order

	// adjacency[from] holds oriented half-edges leaving from, in insertion order.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, no loops, no multi-edges, lenient vertices.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

var _ Reader = (*Graph)(nil)
