// Package core provides the read-mostly in-memory Graph that every search
// package in wayfarer operates on.
//
// The Graph G = (V,E) is built once from a static table and then sealed:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation overrides in mixed graphs (WithMixedEdges + WithEdgeDirected)
//   - Non-negative float64 weights (travel cost in km for the road tables)
//   - Blocked edges (WithBlocked) for adversarial traversals
//   - Per-vertex annotations: heuristic (A*), terminal flag and utility (Minimax)
//   - Strict mode (WithStrictVertices): AddEdge refuses undeclared endpoints
//
// Why a separate Reader?
//
//	Search algorithms accept the Reader interface, which exposes lookups only.
//	The concrete *Graph satisfies it; nothing reachable from a search call can
//	mutate the graph. Seal() makes the read-only contract explicit for callers
//	holding the concrete type as well.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically.
//   - Neighbors(id) returns edges in insertion order, so DFS stack order and
//     Minimax tie-breaking follow the order of the source table.
//
// Core Methods:
//
//	// Construction
//	AddVertex(id string, opts ...VertexOption) error
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error)
//	Seal()
//
//	// Query (Reader)
//	HasVertex(id string) bool
//	Vertices() []string
//	Neighbors(id string) ([]Edge, error)
//	Heuristic(id string) (float64, error)
//	Annotation(id string) (Annotation, error)
//
//	// Paths
//	ValidatePath(r Reader, p Path) error
//	PathCost(r Reader, p Path) (float64, error)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – unknown start/goal/neighbor vertex
//	ErrBadWeight            – NaN or infinite weight
//	ErrNegativeWeight       – weight below zero
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed mode
//	ErrSealed               – mutation after Seal()
//	ErrMissingHeuristic     – A* needs a heuristic the vertex lacks
//	ErrMissingAnnotation    – Minimax needs a terminal flag/utility the vertex lacks
//	ErrNotAdjacent          – consecutive path vertices share no edge
package core
