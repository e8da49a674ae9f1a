package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
)

// Constructor adds a topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, applies every constructor in
// order under the configuration resolved from bopts, and seals the graph.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph: ".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g.Seal()

	return g, nil
}

// addVertices inserts idFn(0..n-1) with the configured annotations.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id, cfg.vertexOpts(id)...); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge emits u→v with the weight of edge index idx.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string, idx int) error {
	if _, err := g.AddEdge(u, v, cfg.weightFn(idx)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}
