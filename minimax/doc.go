// Package minimax evaluates two-player, zero-sum positions on an annotated
// core.Reader with depth-first Minimax and branch-scoped cycle detection.
//
// Every vertex reached must carry an annotation (core.WithTerminal or
// core.WithNonTerminal). Evaluation rules, applied to a vertex v on a given
// turn:
//
//  1. v already on the current branch: 0, a neutral score. This keeps cyclic
//     graphs finite at the price of exactness on positions that repeat.
//  2. v terminal: its utility, whatever the turn or depth.
//  3. Otherwise v joins the branch, every non-blocked move is evaluated on
//     the opposite turn, the maximum (max turn) or minimum (min turn) is
//     taken and v leaves the branch again. With no usable move the result is
//     −Inf on a max turn and +Inf on a min turn.
//
// The walk uses an explicit stack of frames instead of Go recursion, so a
// long branch cannot exhaust the goroutine stack. The branch set already
// bounds depth by the vertex count; WithMaxDepth adds an explicit limit that
// fails with ErrDepthExceeded.
//
// BestMove scores each non-blocked move out of the start vertex on a
// minimizing turn with a fresh branch set and returns the highest; the
// earliest move in adjacency order wins ties.
package minimax
