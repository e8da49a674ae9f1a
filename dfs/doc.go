// Package dfs finds a path between two vertices of a core.Reader with
// depth-first search over an explicit stack of partial paths.
//
// Key features:
//   - Search(g, start, goal, opts...) returns the first path found, which is
//     not necessarily the shortest.
//   - Neighbors are pushed in adjacency order, so the last listed neighbor is
//     explored first.
//   - Visited marks are applied on pop; redundant stack entries are discarded
//     when they surface.
//   - No Go recursion: deep graphs cannot overflow the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) expansions plus the cost of copying each pushed path.
//   - Memory: O(E·L) for stacked paths of length L.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per pop.
//   - WithOnVisit(fn)           hook on first expansion; error aborts.
//   - WithMaxDepth(limit)       do not extend paths beyond limit edges (0 = no limit).
//   - WithFilterNeighbor(fn)    return false to skip curr→neighbor.
//   - WithSkipBlocked()         treat blocked edges as absent.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrVertexNotFound    if start or goal is missing.
//   - ErrOptionViolation        for a negative depth limit.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
