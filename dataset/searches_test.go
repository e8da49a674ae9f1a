package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/astar"
	"github.com/katalvlaran/wayfarer/bfs"
	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/dataset"
	"github.com/katalvlaran/wayfarer/dfs"
	"github.com/katalvlaran/wayfarer/geo"
	"github.com/katalvlaran/wayfarer/minimax"
	"github.com/katalvlaran/wayfarer/ucs"
)

const addis = "Addis Ababa"

func roads(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Roads()
	require.NoError(t, err)

	return ds
}

func TestRoads_UninformedSearch(t *testing.T) {
	g := roads(t).Graph

	res, err := bfs.Search(g, addis, "Hawassa")
	require.NoError(t, err)
	assert.Equal(t, core.Path{addis, "Batu", "Shashemene", "Hawassa"}, res.Path)

	res, err = bfs.Search(g, addis, "Moyale")
	require.NoError(t, err)
	assert.Equal(t, core.Path{addis, "Adama", "Assella", "Dodola", "Bale", "Sof Oumer", "Moyale"}, res.Path)

	d, err := dfs.Search(g, addis, "Moyale")
	require.NoError(t, err)
	assert.Equal(t, core.Path{
		addis, "Debre Markos", "Bahir Dar", "Debre Tabor", "Lalibela", "Woldia", "Semera", "Awash",
		"Adama", "Assella", "Dodola", "Shashemene", "Wolaita Sodo", "Arba Minch", "Konso", "Yabelo", "Moyale",
	}, d.Path)
	assert.GreaterOrEqual(t, d.Path.Hops(), res.Path.Hops())
}

func TestRoads_UCSAndAStarAgree(t *testing.T) {
	ds := roads(t)
	want := map[string]struct {
		cost float64
		path core.Path
	}{
		"Moyale":   {860, core.Path{addis, "Batu", "Shashemene", "Hawassa", "Dilla", "Bule Hora", "Yabelo", "Moyale"}},
		"Lalibela": {545, core.Path{addis, "Debre Birhan", "Dessie", "Woldia", "Lalibela"}},
		"Axum":     {881, core.Path{addis, "Debre Markos", "Bahir Dar", "Gondar", "Shire", "Axum"}},
		"Jijiga":   {664, core.Path{addis, "Adama", "Awash", "Dire Dawa", "Harar", "Babile", "Jijiga"}},
	}
	for goal, w := range want {
		u, err := ucs.Search(ds.Graph, addis, goal)
		require.NoError(t, err, goal)
		assert.Equal(t, w.cost, u.Cost, goal)
		assert.Equal(t, w.path, u.Path, goal)

		a, err := astar.Search(ds.Graph, addis, goal, astar.WithHeuristic(geo.StraightLine(ds.Coordinates, goal)))
		require.NoError(t, err, goal)
		assert.Equal(t, w.cost, a.Cost, goal)
		assert.LessOrEqual(t, a.Expanded, u.Expanded, goal)
	}

	// The stored heuristic points at Moyale.
	a, err := astar.Search(ds.Graph, addis, "Moyale")
	require.NoError(t, err)
	assert.Equal(t, 860.0, a.Cost)
}

func TestRoads_MultiGoal(t *testing.T) {
	g := roads(t).Graph
	goals := []string{"Axum", "Gondar", "Lalibela", "Babile", "Jimma", "Bale", "Sof Oumer", "Arba Minch"}

	res, err := ucs.MultiGoal(g, addis, goals)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jimma", "Arba Minch", "Bale", "Sof Oumer", "Babile", "Lalibela", "Gondar", "Axum"}, res.Order())
	assert.Equal(t, 4035.0, res.Cost)
	assert.Len(t, res.Path, 29)

	cost, err := core.PathCost(g, res.Path)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, cost)
}

func TestGame_Minimax(t *testing.T) {
	ds, err := dataset.Game()
	require.NoError(t, err)

	m, err := minimax.BestMove(ds.Graph, addis)
	require.NoError(t, err)
	assert.Equal(t, "Ambo", m.To)
	assert.Equal(t, 3.0, m.Value)
	assert.Equal(t, []minimax.Candidate{
		{To: "Ambo", Value: 3}, {To: "Adama", Value: 3}, {To: "Buta Jirra", Value: 2},
	}, m.Candidates)

	v, err := minimax.Evaluate(ds.Graph, addis, true)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = minimax.Evaluate(ds.Graph, "Ambo", true)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}
