package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// GridID is the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }

// Grid returns a Constructor that builds a rows×cols lattice with IDs "r_c".
// For every cell, the right edge is emitted before the down edge. The
// configured IDFn is not consulted; HeuristicFn still applies.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id, cfg.vertexOpts(id)...); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		k := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, GridID(r, c), GridID(r, c+1), k); err != nil {
						return err
					}
					k++
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, GridID(r, c), GridID(r+1, c), k); err != nil {
						return err
					}
					k++
				}
			}
		}

		return nil
	}
}
