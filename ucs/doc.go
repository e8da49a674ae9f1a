// Package ucs implements uniform-cost search and a greedy multi-goal tour on
// weighted graphs with non-negative edge weights.
//
// Uniform-cost search is Dijkstra's algorithm stopped at the goal. The
// frontier is a min-heap of (cost, partial path) entries; the cheapest entry
// is popped, discarded if its vertex was already finalized, otherwise the
// vertex is finalized and, unless it is the goal, every unvisited neighbor is
// pushed with cost+weight.
//
// Complexity:
//
//   - Time:  O((V + E) log E) heap operations, plus O(L) per push to copy a path.
//   - Space: O(E·L) worst case for the queued paths (lazy decrease-key).
//
// Tie-breaking:
//
//	Entries with equal cost pop in lexicographic order of their paths
//	(element-wise string comparison, a proper prefix first), then in
//	insertion order. Results are therefore reproducible across runs.
//
// Multi-goal tour:
//
//	MultiGoal repeatedly runs Search from the current position to every
//	remaining goal, moves to the cheapest one (ties go to the goal listed
//	first), and concatenates the legs without repeating the junction vertex.
//	The tour is greedy nearest-next and therefore not optimal in general.
//
// Options:
//
//   - WithContext(ctx):           cancellation, checked once per pop.
//   - WithMaxDistance(d):         give up once the cheapest frontier entry exceeds d.
//   - WithInfEdgeThreshold(t):    edges with weight ≥ t are impassable.
//   - WithSkipBlocked():          blocked edges are impassable.
//   - WithOnExpand(fn):           hook invoked for every finalized vertex.
//
// Errors (sentinel):
//
//   - ErrNilGraph                 if the graph is nil.
//   - core.ErrVertexNotFound      if start or a goal is not in the graph.
//   - ErrOptionViolation          wrapping ErrBadMaxDistance or ErrBadInfThreshold.
//   - ErrNegativeWeight           if a negative edge is met during expansion.
package ucs
