// Package bfs finds a fewest-hop path between two vertices of a core.Reader
// with breadth-first search.
//
// What
//
//   - The frontier is a FIFO queue of partial paths, not bare vertices, so
//     the path that discovered the goal is returned as-is; no parent map or
//     backtracking pass is needed.
//   - A vertex is marked visited when a path ending in it is popped, not when
//     it is pushed. The queue may therefore hold several paths to the same
//     vertex; all but the first popped are discarded.
//   - The search stops as soon as a popped path ends at the goal. Because the
//     queue is processed level by level, that path has the minimal number of
//     edges among all start→goal paths.
//   - Edge weights are ignored. Blocked edges are ignored too unless
//     WithSkipBlocked is given.
//
// No path
//
//	An exhausted frontier is a normal outcome: Search returns a Result whose
//	Path is nil (Result.Found() == false) and a nil error.
//
// Determinism
//
//	core.Reader.Neighbors reports edges in insertion order and BFS enqueues
//	them in that order, so the returned path is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) expansions, plus O(L) per push to copy a path of length L.
//   - Memory: O(E·L) worst case for the queued paths.
//
// Usage
//
//	res, err := bfs.Search(g, "Addis Ababa", "Hawassa")
//	if err != nil {
//	    // ErrGraphNil, core.ErrVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, context errors, or a wrapped OnVisit error
//	}
//	if res.Found() {
//	    fmt.Println(res.Path)
//	}
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per pop.
//   - WithMaxDepth(d):          do not extend paths beyond d edges (d > 0; 0 = no limit).
//   - WithFilterNeighbor(fn):   skip curr→neighbor when fn returns false.
//   - WithSkipBlocked():        treat blocked edges as absent.
//   - WithOnEnqueue(fn):        hook when a path is pushed.
//   - WithOnDequeue(fn):        hook when a path is popped.
//   - WithOnVisit(fn):          hook when a vertex is first expanded; an error aborts.
package bfs
