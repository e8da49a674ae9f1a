package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/geo"
	"github.com/katalvlaran/wayfarer/render"
)

func triangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2.5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 9, core.WithBlocked())
	require.NoError(t, err)

	return g
}

func TestDOT_Undirected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, triangle(t), core.Path{"C", "B"}, render.WithTitle("demo")))

	want := `graph "demo" {
    node [style=filled, fillcolor=lightblue];
    "A";
    "B" [fillcolor=red];
    "C" [fillcolor=red];
    "A" -- "B" [label="1"];
    "B" -- "C" [label="2.5", color=red, penwidth=2];
    "A" -- "C" [label="9", style=dashed];
}
`
	assert.Equal(t, want, buf.String())
}

func TestDOT_DirectedWithCoordinates(t *testing.T) {
	g := triangle(t, core.WithDirected(true))
	c := geo.Coordinates{}
	c.Set("A", 9, 38.5)

	var buf bytes.Buffer
	require.NoError(t, render.DOT(&buf, g, nil, render.WithCoordinates(c)))
	out := buf.String()
	assert.Contains(t, out, `digraph "G" {`)
	assert.Contains(t, out, `"A" [pos="38.5,9!"];`)
	assert.Contains(t, out, `"B" -> "C" [label="2.5"];`)
	assert.NotContains(t, out, "red")
}

func TestDOT_RejectsInvalidPath(t *testing.T) {
	var buf bytes.Buffer
	err := render.DOT(&buf, triangle(t, core.WithDirected(true)), core.Path{"C", "A"}, render.WithTitle("x"))
	assert.ErrorIs(t, err, core.ErrNotAdjacent)
	assert.Zero(t, buf.Len())

	err = render.DOT(&buf, triangle(t), core.Path{"A", "Q"})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
