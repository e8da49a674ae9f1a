package ucs_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/builder"
	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/ucs"
)

type wedge struct {
	from, to string
	w        float64
}

func weighted(t *testing.T, edges []wedge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestSearch_Validation(t *testing.T) {
	_, err := ucs.Search(nil, "A", "B")
	assert.ErrorIs(t, err, ucs.ErrNilGraph)

	g := weighted(t, []wedge{{"A", "B", 1}})
	_, err = ucs.Search(g, "A", "Q")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = ucs.Search(g, "A", "B", ucs.WithMaxDistance(-1))
	assert.ErrorIs(t, err, ucs.ErrOptionViolation)
	assert.ErrorIs(t, err, ucs.ErrBadMaxDistance)

	_, err = ucs.Search(g, "A", "B", ucs.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, ucs.ErrBadInfThreshold)
}

// TestSearch_CheapestBeatsFewestHops prefers three cheap edges over one
// expensive edge.
func TestSearch_CheapestBeatsFewestHops(t *testing.T) {
	g := weighted(t, []wedge{{"A", "D", 10}, {"A", "B", 1}, {"B", "C", 2}, {"C", "D", 3}})

	res, err := ucs.Search(g, "A", "D")
	require.NoError(t, err)
	if diff := cmp.Diff(core.Path{"A", "B", "C", "D"}, res.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6.0, res.Cost)

	cost, err := core.PathCost(g, res.Path)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, cost)
}

// TestSearch_LexicographicTieBreak inserts A–C before A–B; equal-cost paths
// still resolve to the lexicographically smaller one.
func TestSearch_LexicographicTieBreak(t *testing.T) {
	g := weighted(t, []wedge{{"A", "C", 1}, {"A", "B", 1}, {"C", "D", 1}, {"B", "D", 1}})

	res, err := ucs.Search(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "D"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := weighted(t, []wedge{{"A", "B", 4}})
	res, err := ucs.Search(g, "B", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"B"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

func TestSearch_Unreachable(t *testing.T) {
	g := weighted(t, []wedge{{"A", "B", 1}})
	require.NoError(t, g.AddVertex("Z"))

	res, err := ucs.Search(g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
}

func TestSearch_Limits(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	res, err := ucs.Search(g, "v0", "v3", ucs.WithMaxDistance(1.5))
	require.NoError(t, err)
	assert.False(t, res.Found())

	walls := weighted(t, []wedge{{"A", "B", 10}, {"A", "C", 8}, {"C", "B", 8}})
	res, err = ucs.Search(walls, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Cost)
	res, err = ucs.Search(walls, "A", "B", ucs.WithInfEdgeThreshold(9))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "C", "B"}, res.Path)
	assert.Equal(t, 16.0, res.Cost)
}

func TestSearch_SkipBlocked(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, core.WithBlocked())
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 2)
	require.NoError(t, err)

	res, err := ucs.Search(g, "A", "B", ucs.WithSkipBlocked())
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Cost)
}

func TestSearch_OnExpandAndCancel(t *testing.T) {
	g := weighted(t, []wedge{{"A", "B", 1}, {"B", "C", 1}})
	costs := map[string]float64{}
	_, err := ucs.Search(g, "A", "C", ucs.WithOnExpand(func(id string, c float64) { costs[id] = c }))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 2}, costs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ucs.Search(g, "A", "C", ucs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMultiGoal_Chain visits C before D on the chain A–B–C–D.
func TestMultiGoal_Chain(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDFn(builder.SymbolIDFn)}, builder.Path(4))
	require.NoError(t, err)

	res, err := ucs.MultiGoal(g, "A", []string{"D", "C"})
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C", "D"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, []string{"C", "D"}, res.Order())
}

func TestMultiGoal_EdgeCases(t *testing.T) {
	g := weighted(t, []wedge{{"S", "X", 1}, {"S", "Y", 1}})

	res, err := ucs.MultiGoal(g, "S", nil)
	require.NoError(t, err)
	assert.Equal(t, core.Path{"S"}, res.Path)
	assert.Zero(t, res.Cost)

	res, err = ucs.MultiGoal(g, "S", []string{"Y", "X", "Y", "S"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "Y", "X"}, res.Order(), "start costs 0, then ties go to the goal listed first")
	assert.Equal(t, core.Path{"S", "Y", "S", "X"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)

	_, err = ucs.MultiGoal(g, "S", []string{"X", "nowhere"})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestMultiGoal_Unreachable(t *testing.T) {
	g := weighted(t, []wedge{{"S", "X", 1}})
	require.NoError(t, g.AddVertex("Z"))

	res, err := ucs.MultiGoal(g, "S", []string{"Z", "X"})
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.True(t, math.IsInf(res.Cost, 1))
	require.Len(t, res.Legs, 1)
	assert.Equal(t, "X", res.Legs[0].Goal)
}
