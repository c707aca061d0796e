// Package graph defines the dense, integer-indexed graph and array value
// types shared by every algorithm instance in this module: a weighted
// directed adjacency matrix with precomputed parent lists, a weighted
// undirected edge list with per-vertex incidence, and a padded integer
// array for the tree-shaped instances.
//
// All vertex/position indices here are dense integers in [0, n); none of
// these types carry string vertex IDs — that is a deliberate divergence
// from a general-purpose graph library, in favor of the flat arrays the LLP
// kernel's state vectors are built on.
package graph

import "errors"

// Sentinel errors for graph/array construction.
var (
	// ErrNonPositiveSize indicates n (or m) was <= 0 where a positive
	// count is required.
	ErrNonPositiveSize = errors.New("graph: size must be positive")

	// ErrVertexOutOfRange indicates a vertex index fell outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNegativeWeight indicates a negative edge weight was supplied to a
	// constructor that requires non-negative weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight not allowed here")

	// ErrDimensionMismatch indicates two parallel slices (destinations and
	// weights) had different lengths.
	ErrDimensionMismatch = errors.New("graph: destination/weight length mismatch")
)
