// Package dataset turns city/road tables into sealed core graphs.
//
// A table lists cities (optionally with coordinates, an A* heuristic and a
// Minimax annotation) and roads between them. Tables come from YAML
// (LoadYAML), HCL (LoadHCL) or a file of either kind (LoadFile). Two tables
// are embedded: Roads, the Ethiopian road network with heuristics towards
// Moyale, and Game, the adversarial travel game evaluated by minimax.
//
// Roads may only reference declared cities; anything else fails with
// core.ErrVertexNotFound.
package dataset
