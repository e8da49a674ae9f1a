package geo

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// R-tree shape and the half-width of the box stored for each point.
const (
	treeDim      = 2
	treeMinFill  = 25
	treeMaxFill  = 50
	pointEpsilon = 1e-9
)

// place is a vertex stored in the R-tree.
type place struct {
	id string
	pt orb.Point
}

// Bounds implements rtreego.Spatial.
func (p *place) Bounds() rtreego.Rect {
	return rtreego.Point{p.pt.Lon(), p.pt.Lat()}.ToRect(pointEpsilon)
}

// Hit is a vertex found by an Index query.
type Hit struct {
	ID       string
	Point    orb.Point
	Distance float64 // kilometres from the query point
}

// Index answers proximity queries over a fixed set of coordinates.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an R-tree over c.
func NewIndex(c Coordinates) *Index {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tree := rtreego.NewTree(treeDim, treeMinFill, treeMaxFill)
	for _, id := range ids {
		tree.Insert(&place{id: id, pt: c[id]})
	}

	return &Index{tree: tree, size: len(ids)}
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the vertex closest to p by great-circle distance.
//
// The planar nearest neighbour in (lon, lat) space gives an upper bound d;
// every vertex inside the bound of radius d around p is then ranked by
// haversine distance, ties broken by ID.
func (ix *Index) Nearest(p orb.Point) (Hit, error) {
	if ix.size == 0 {
		return Hit{}, ErrEmptyIndex
	}
	first := ix.tree.NearestNeighbor(rtreego.Point{p.Lon(), p.Lat()}).(*place)
	hits := ix.Within(p, Distance(p, first.pt))
	if len(hits) == 0 {
		return Hit{ID: first.id, Point: first.pt, Distance: Distance(p, first.pt)}, nil
	}

	return hits[0], nil
}

// Within returns every vertex at most km kilometres from p, closest first.
func (ix *Index) Within(p orb.Point, km float64) []Hit {
	if ix.size == 0 || km < 0 {
		return nil
	}
	b := geo.NewBoundAroundPoint(p, km*metresPerKm)
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min.Lon(), b.Min.Lat()},
		[]float64{b.Max.Lon() - b.Min.Lon() + pointEpsilon, b.Max.Lat() - b.Min.Lat() + pointEpsilon},
	)
	if err != nil {
		return nil
	}

	var hits []Hit
	for _, s := range ix.tree.SearchIntersect(rect) {
		pl := s.(*place)
		if d := Distance(p, pl.pt); d <= km+pointEpsilon {
			hits = append(hits, Hit{ID: pl.id, Point: pl.pt, Distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})

	return hits
}
