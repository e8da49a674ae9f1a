package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wayfarer/core"
)

// IDFn maps a zero-based vertex index to a vertex ID.
type IDFn func(idx int) string

// WeightFn maps a zero-based edge index (emission order) to its weight.
type WeightFn func(edgeIdx int) float64

// HeuristicFn computes the A* estimate for a generated vertex.
type HeuristicFn func(id string) float64

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved configuration handed to every Constructor.
type builderConfig struct {
	idFn        IDFn
	weightFn    WeightFn
	heuristicFn HeuristicFn // nil: vertices carry no heuristic
}

const defaultConstWeight = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: func(int) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultIDFn yields "v0", "v1", ...
func DefaultIDFn(idx int) string {
	return "v" + strconv.Itoa(idx)
}

// SymbolIDFn yields "A".."Z". It panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// WithIDFn sets the vertex naming scheme. nil is ignored.
func WithIDFn(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithWeightFn sets the edge weight scheme. nil is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(func(int) float64 { return w })
}

// WithHeuristicFn annotates every generated vertex with fn(id).
func WithHeuristicFn(fn HeuristicFn) BuilderOption {
	return func(c *builderConfig) { c.heuristicFn = fn }
}

// vertexOpts returns the core options for a generated vertex.
func (c builderConfig) vertexOpts(id string) []core.VertexOption {
	if c.heuristicFn == nil {
		return nil
	}

	return []core.VertexOption{core.WithHeuristic(c.heuristicFn(id))}
}
