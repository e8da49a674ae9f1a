package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/builder"
	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/dfs"
)

// buildDiamond creates A–B, A–C, B–D, C–D, D–E (undirected).
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := dfs.Search(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestSearch_EndpointsNotFound(t *testing.T) {
	g := buildDiamond(t)
	_, err := dfs.Search(g, "X", "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = dfs.Search(g, "A", "X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSearch_NegativeDepth(t *testing.T) {
	_, err := dfs.Search(buildDiamond(t), "A", "E", dfs.WithMaxDepth(-3))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

// TestSearch_LastNeighborFirst checks the LIFO discipline: C is listed after
// B, so it is explored first.
func TestSearch_LastNeighborFirst(t *testing.T) {
	res, err := dfs.Search(buildDiamond(t), "A", "E")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "C", "D", "E"}, res.Path)
	assert.Equal(t, []string{"A", "C", "D"}, res.Order)
	assert.NoError(t, core.ValidatePath(buildDiamond(t), res.Path))
}

// TestSearch_NotShortest shows DFS returns the first path, not the shortest.
func TestSearch_NotShortest(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	res, err := dfs.Search(g, "v0", "v1")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"v0", "v5", "v4", "v3", "v2", "v1"}, res.Path)
}

func TestSearch_NoPath(t *testing.T) {
	g := buildDiamond(t)
	require.NoError(t, g.AddVertex("Z"))

	res, err := dfs.Search(g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, res.Order)
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	res, err := dfs.Search(buildDiamond(t), "B", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"B"}, res.Path)
	assert.Equal(t, 1, res.Pushed)
}

func TestSearch_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)

	res, err := dfs.Search(g, "v0", "v5", dfs.WithMaxDepth(3))
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, res.Order)

	res, err = dfs.Search(buildDiamond(t), "A", "E",
		dfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "C" }))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "D", "E"}, res.Path)
}

func TestSearch_SkipBlocked(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, core.WithBlocked())
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 1)
	require.NoError(t, err)

	res, err := dfs.Search(g, "A", "B", dfs.WithSkipBlocked())
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "C", "B"}, res.Path)
}

func TestSearch_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := dfs.Search(buildDiamond(t), "A", "E", dfs.WithOnVisit(func(id string, depth int) error {
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Search(buildDiamond(t), "A", "E", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
