// Package astar implements A* search over a core.Reader.
//
// The frontier is a min-heap of (f, g, h, vertex) entries with f = g + h.
// best[v] holds the cheapest known cost from the start and pred[v] the
// vertex it was reached from; a neighbor is relaxed only when the tentative
// cost is strictly lower than best or best is unknown. Superseded heap
// entries are left in place and skipped when popped (lazy deletion). There
// is no closed set, so a vertex reached again more cheaply is expanded again.
//
// When the goal is popped the path is rebuilt by walking pred back to the
// start. With an admissible heuristic the returned cost equals the one
// reported by ucs.Search.
//
// Tie-breaking: lower f, then lower h, then smaller vertex ID, then
// insertion order.
//
// Heuristic:
//
//	By default h(v) is core.Reader.Heuristic(v); a vertex without a stored
//	value fails the search with core.ErrMissingHeuristic as soon as it is
//	reached. WithHeuristic replaces the lookup, e.g. with geo.StraightLine.
package astar
