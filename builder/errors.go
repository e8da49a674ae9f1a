// Package: wayfarer/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, branching)
// is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadLeafCount indicates that GameTree received a number of leaf utilities
// that is not a positive power of the branching factor.
var ErrBadLeafCount = errors.New("builder: leaf count is not a power of the branching factor")

// ErrUnsupportedGraphMode indicates the constructor is incompatible with the
// graph mode (e.g. GameTree on an undirected graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates a nil constructor or a core failure while building.
var ErrConstructFailed = errors.New("builder: construction failed")
