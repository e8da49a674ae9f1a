package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/geo"
)

var (
	// ErrDuplicateCity indicates a city declared twice.
	ErrDuplicateCity = errors.New("dataset: duplicate city")

	// ErrBadCity indicates an inconsistent city record.
	ErrBadCity = errors.New("dataset: invalid city")

	// ErrBadRoad indicates an inconsistent road record.
	ErrBadRoad = errors.New("dataset: invalid road")

	// ErrUnsupportedFormat indicates a file extension LoadFile cannot read.
	ErrUnsupportedFormat = errors.New("dataset: unsupported table format")
)

// defaultRoadKm is the weight of a road whose length is omitted.
const defaultRoadKm = 1.0

// City is one row of the city table.
type City struct {
	Name      string                 `yaml:"name"`
	Lat       *float64               `yaml:"lat,omitempty"`
	Lon       *float64               `yaml:"lon,omitempty"`
	Heuristic *float64               `yaml:"heuristic,omitempty"`
	Terminal  *bool                  `yaml:"terminal,omitempty"`
	Utility   *float64               `yaml:"utility,omitempty"`
	Meta      map[string]interface{} `yaml:"meta,omitempty"`
}

// Road is one row of the road table.
type Road struct {
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Km       *float64 `yaml:"km,omitempty"`
	Blocked  bool     `yaml:"blocked,omitempty"`
	Directed *bool    `yaml:"directed,omitempty"`
}

// Table is the format-independent form of a dataset.
type Table struct {
	Name     string `yaml:"name"`
	Directed bool   `yaml:"directed"`
	Cities   []City `yaml:"cities"`
	Roads    []Road `yaml:"roads"`
}

// Dataset is a built table.
type Dataset struct {
	Name string

	// Graph is sealed.
	Graph *core.Graph

	// Coordinates holds the cities that declared lat and lon.
	Coordinates geo.Coordinates
}

// Index returns an R-tree over the dataset coordinates.
func (d *Dataset) Index() *geo.Index { return geo.NewIndex(d.Coordinates) }

// Build validates t and converts it into a Dataset.
func Build(t Table) (*Dataset, error) {
	gopts := []core.GraphOption{core.WithDirected(t.Directed), core.WithStrictVertices()}
	for _, r := range t.Roads {
		if r.Directed != nil {
			gopts = append(gopts, core.WithMixedEdges())
			break
		}
	}
	g := core.NewGraph(gopts...)
	coords := geo.Coordinates{}

	for i, c := range t.Cities {
		opts, err := cityOptions(c)
		if err != nil {
			return nil, fmt.Errorf("city #%d %q: %w", i, c.Name, err)
		}
		if g.HasVertex(c.Name) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCity, c.Name)
		}
		if err = g.AddVertex(c.Name, opts...); err != nil {
			return nil, fmt.Errorf("city #%d: %w", i, err)
		}
		if c.Lat != nil {
			coords.Set(c.Name, *c.Lat, *c.Lon)
		}
	}

	for i, r := range t.Roads {
		km := defaultRoadKm
		if r.Km != nil {
			km = *r.Km
		}
		var eopts []core.EdgeOption
		if r.Blocked {
			eopts = append(eopts, core.WithBlocked())
		}
		if r.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*r.Directed))
		}
		if _, err := g.AddEdge(r.From, r.To, km, eopts...); err != nil {
			return nil, fmt.Errorf("road #%d %s→%s: %w", i, r.From, r.To, err)
		}
	}
	g.Seal()

	return &Dataset{Name: t.Name, Graph: g, Coordinates: coords}, nil
}

// cityOptions checks c and returns its vertex annotations.
func cityOptions(c City) ([]core.VertexOption, error) {
	if (c.Lat == nil) != (c.Lon == nil) {
		return nil, fmt.Errorf("%w: lat and lon must be given together", ErrBadCity)
	}
	if c.Lat != nil && (*c.Lat < -90 || *c.Lat > 90 || *c.Lon < -180 || *c.Lon > 180) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrBadCity)
	}

	var opts []core.VertexOption
	if c.Heuristic != nil {
		if *c.Heuristic < 0 {
			return nil, fmt.Errorf("%w: negative heuristic", ErrBadCity)
		}
		opts = append(opts, core.WithHeuristic(*c.Heuristic))
	}
	switch {
	case c.Terminal == nil && c.Utility != nil:
		return nil, fmt.Errorf("%w: utility without terminal flag", ErrBadCity)
	case c.Terminal == nil:
	case *c.Terminal && c.Utility == nil:
		return nil, fmt.Errorf("%w: terminal city needs a utility", ErrBadCity)
	case *c.Terminal:
		opts = append(opts, core.WithTerminal(*c.Utility))
	default:
		opts = append(opts, core.WithNonTerminal())
	}
	if len(c.Meta) > 0 {
		opts = append(opts, core.WithMetadata(c.Meta))
	}

	return opts, nil
}
