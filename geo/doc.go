// Package geo attaches coordinates to graph vertices.
//
// Coordinates map vertex IDs to orb.Point values (longitude, latitude).
// StraightLine turns them into an A* heuristic: the great-circle distance in
// kilometres to the goal, which never exceeds the road distance and is
// therefore admissible. Index stores the same points in an R-tree for
// nearest-vertex and radius lookups.
package geo
