package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var (
	// ErrNoCoordinates indicates a vertex without a recorded position.
	ErrNoCoordinates = errors.New("geo: vertex has no coordinates")

	// ErrEmptyIndex indicates a lookup on an Index with no points.
	ErrEmptyIndex = errors.New("geo: index is empty")
)

// metresPerKm converts orb/geo distances to the table unit.
const metresPerKm = 1000.0

// Coordinates maps vertex IDs to (lon, lat) points.
type Coordinates map[string]orb.Point

// Set records id at latitude lat and longitude lon.
func (c Coordinates) Set(id string, lat, lon float64) {
	c[id] = orb.Point{lon, lat}
}

// Lookup returns the point of id or ErrNoCoordinates.
func (c Coordinates) Lookup(id string) (orb.Point, error) {
	p, ok := c[id]
	if !ok {
		return orb.Point{}, fmt.Errorf("%w: %q", ErrNoCoordinates, id)
	}

	return p, nil
}

// Distance returns the haversine distance between a and b in kilometres.
func Distance(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b) / metresPerKm
}

// Between returns the distance in kilometres between two vertices.
func (c Coordinates) Between(from, to string) (float64, error) {
	a, err := c.Lookup(from)
	if err != nil {
		return 0, err
	}
	b, err := c.Lookup(to)
	if err != nil {
		return 0, err
	}

	return Distance(a, b), nil
}

// StraightLine returns an A* heuristic measuring the distance from a vertex
// to goal. Unknown vertices fail with ErrNoCoordinates; an unknown goal
// fails on the first call.
func StraightLine(c Coordinates, goal string) func(id string) (float64, error) {
	return func(id string) (float64, error) {
		return c.Between(id, goal)
	}
}
