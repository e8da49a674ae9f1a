// Package: wayfarer/builder
//
// impl_gametree.go - GameTree(branching, leaves) constructor.
//
// Contract:
//   - branching ≥ 2; len(leaves) == branching^depth for some depth ≥ 1.
//   - Vertices are numbered level by level: idFn(0) is the root.
//   - Inner vertices are non-terminal; leaves are terminal with
//     leaves[i] as utility, left to right.
//   - Requires a directed graph so children cannot reach their parent.
package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
)

const (
	methodGameTree = "GameTree"
	minBranching   = 2
)

// GameTree returns a Constructor for a complete b-ary Minimax tree whose
// leaves carry the given utilities.
func GameTree(branching int, leaves []float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if branching < minBranching {
			return fmt.Errorf("%s: branching=%d < min=%d: %w", methodGameTree, branching, minBranching, ErrTooFewVertices)
		}
		if !g.Directed() {
			return fmt.Errorf("%s: undirected graph: %w", methodGameTree, ErrUnsupportedGraphMode)
		}

		inner, ok := innerCount(branching, len(leaves))
		if !ok {
			return fmt.Errorf("%s: %d leaves, branching %d: %w", methodGameTree, len(leaves), branching, ErrBadLeafCount)
		}

		total := inner + len(leaves)
		for i := 0; i < total; i++ {
			id := cfg.idFn(i)
			opts := cfg.vertexOpts(id)
			if i < inner {
				opts = append(opts, core.WithNonTerminal())
			} else {
				opts = append(opts, core.WithTerminal(leaves[i-inner]))
			}
			if err := g.AddVertex(id, opts...); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodGameTree, id, err)
			}
		}

		// In level order the children of vertex p are p*b+1 .. p*b+b.
		k := 0
		for p := 0; p < inner; p++ {
			for j := 1; j <= branching; j++ {
				if err := addEdge(g, cfg, methodGameTree, cfg.idFn(p), cfg.idFn(p*branching+j), k); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}

// innerCount returns the number of inner vertices of a complete tree with
// the given branching factor and leaf count, and whether such a tree exists.
func innerCount(branching, leaves int) (int, bool) {
	if leaves < branching {
		return 0, false
	}
	inner, level := 0, 1
	for level < leaves {
		inner += level
		level *= branching
	}

	return inner, level == leaves
}
