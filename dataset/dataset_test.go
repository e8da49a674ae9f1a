package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/dataset"
)

func TestRoads_Shape(t *testing.T) {
	ds, err := dataset.Roads()
	require.NoError(t, err)
	assert.Equal(t, "ethiopia-roads", ds.Name)
	assert.Equal(t, 42, ds.Graph.VertexCount())
	assert.Equal(t, 50, ds.Graph.EdgeCount())
	assert.Len(t, ds.Coordinates, 42)
	assert.True(t, ds.Graph.Sealed())

	h, err := ds.Graph.Heuristic("Moyale")
	require.NoError(t, err)
	assert.Zero(t, h)

	nbrs, err := ds.Graph.NeighborIDs("Addis Ababa")
	require.NoError(t, err)
	want := []string{"Adama", "Ambo", "Debre Birhan", "Batu", "Wolkite", "Debre Markos"}
	if diff := cmp.Diff(want, nbrs); diff != "" {
		t.Errorf("Addis Ababa neighbors (-want +got):\n%s", diff)
	}
}

func TestGame_Shape(t *testing.T) {
	ds, err := dataset.Game()
	require.NoError(t, err)
	assert.True(t, ds.Graph.Directed())
	assert.Equal(t, 19, ds.Graph.VertexCount())

	ann, err := ds.Graph.Annotation("Wolkite")
	require.NoError(t, err)
	assert.Equal(t, core.Annotation{Terminal: true, Utility: 9}, ann)

	edges, err := ds.Graph.Neighbors("Addis Ababa")
	require.NoError(t, err)
	require.Len(t, edges, 4)
	assert.True(t, edges[3].Blocked)
	assert.Equal(t, 1.0, edges[0].Weight, "omitted km defaults to one")
}

const corridorYAML = `
name: corridor
cities:
  - {name: A, lat: 9.0, lon: 38.7, heuristic: 2}
  - {name: B, heuristic: 1, meta: {region: Oromia}}
  - {name: C, heuristic: 0}
roads:
  - {from: A, to: B, km: 3}
  - {from: B, to: C, km: 4, directed: true}
`

func TestLoadYAML(t *testing.T) {
	ds, err := dataset.LoadYAML(strings.NewReader(corridorYAML))
	require.NoError(t, err)
	assert.Equal(t, "corridor", ds.Name)
	assert.Len(t, ds.Coordinates, 1)

	v, err := ds.Graph.Vertex("B")
	require.NoError(t, err)
	assert.Equal(t, "Oromia", v.Metadata["region"])

	assert.True(t, ds.Graph.HasEdge("B", "C"))
	assert.False(t, ds.Graph.HasEdge("C", "B"), "per-road direction override")
	assert.True(t, ds.Graph.HasEdge("B", "A"))
}

func TestLoadYAML_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"unknown neighbor": {
			src:  "cities: [{name: A}]\nroads: [{from: A, to: Nowhere, km: 1}]",
			want: core.ErrVertexNotFound,
		},
		"negative km": {
			src:  "cities: [{name: A}, {name: B}]\nroads: [{from: A, to: B, km: -1}]",
			want: core.ErrNegativeWeight,
		},
		"duplicate city": {
			src:  "cities: [{name: A}, {name: A}]",
			want: dataset.ErrDuplicateCity,
		},
		"terminal without utility": {
			src:  "cities: [{name: A, terminal: true}]",
			want: dataset.ErrBadCity,
		},
		"lat without lon": {
			src:  "cities: [{name: A, lat: 3}]",
			want: dataset.ErrBadCity,
		},
		"empty name": {
			src:  "cities: [{name: ''}]",
			want: core.ErrEmptyVertexID,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.LoadYAML(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataset.LoadYAML(strings.NewReader("cities: [{name: A, population: 3}]"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = dataset.LoadYAML(strings.NewReader(""))
	assert.Error(t, err)
}

const corridorHCL = `
name     = "game"
directed = true

city "root" {
  terminal = false
  meta = {
    region = "Addis Ababa"
    rank   = 1
    tags   = ["capital", "hub"]
  }
}

city "left" {
  terminal = true
  utility  = 3
}

city "right" {
  terminal = true
  utility  = 7
}

road {
  from = "root"
  to   = "left"
}

road {
  from    = "root"
  to      = "right"
  blocked = true
}
`

func TestLoadHCL(t *testing.T) {
	ds, err := dataset.LoadHCL("game.hcl", []byte(corridorHCL))
	require.NoError(t, err)
	assert.Equal(t, "game", ds.Name)
	assert.True(t, ds.Graph.Directed())

	v, err := ds.Graph.Vertex("root")
	require.NoError(t, err)
	assert.Equal(t, "Addis Ababa", v.Metadata["region"])
	assert.Equal(t, 1.0, v.Metadata["rank"])
	assert.Equal(t, []interface{}{"capital", "hub"}, v.Metadata["tags"])

	edges, err := ds.Graph.Neighbors("root")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.False(t, edges[0].Blocked)
	assert.True(t, edges[1].Blocked)

	ann, err := ds.Graph.Annotation("right")
	require.NoError(t, err)
	assert.Equal(t, 7.0, ann.Utility)
}

func TestLoadHCL_Errors(t *testing.T) {
	_, err := dataset.LoadHCL("bad.hcl", []byte(`city "a" {`))
	assert.Error(t, err)

	_, err = dataset.LoadHCL("bad.hcl", []byte("city \"a\" {}\nroad {\n  from = \"a\"\n  to = \"b\"\n}\n"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = dataset.LoadHCL("bad.hcl", []byte("city \"a\" {\n  meta = 3\n}\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "corridor.yml")
	require.NoError(t, os.WriteFile(yml, []byte(strings.Replace(corridorYAML, "name: corridor\n", "", 1)), 0o600))
	hclPath := filepath.Join(dir, "game.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(corridorHCL), 0o600))
	txt := filepath.Join(dir, "table.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))

	ctx := context.Background()
	ds, err := dataset.LoadFile(ctx, yml)
	require.NoError(t, err)
	assert.Equal(t, "corridor", ds.Name, "name falls back to the file stem")

	ds, err = dataset.LoadFile(ctx, hclPath)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Graph.VertexCount())

	_, err = dataset.LoadFile(ctx, txt)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)

	_, err = dataset.LoadFile(ctx, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
