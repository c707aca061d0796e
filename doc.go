// Package llp (module github.com/katalvlaran/llp) is a library of parallel
// graph and array algorithms built on a single reusable abstraction: the
// Lattice-Linear Predicate (LLP) kernel.
//
// The kernel drives a family of algorithms — reduction, prefix-sum,
// Bellman-Ford single-source shortest paths, Johnson's price function,
// parallel connected components via pointer-jumping, parallel Boruvka MST,
// and parallel Gale-Shapley stable matching — as instances of a common
// monotone fixed-point iteration over a product lattice: repeatedly collect
// every index whose local state violates its invariant, then advance those
// indices by one monotone step, until none remain.
//
// Subpackages:
//
//	executor/    — bounded worker pool, invoke-all-and-join
//	iset/        — concurrent index-set bitset
//	llp/         — the fixed-point orchestrator (Contract, Solve)
//	reduce/      — tree-shaped subtree-sum reduction
//	prefixsum/   — inclusive prefix sum over a summation tree
//	bellmanford/ — single-source shortest paths with negative-cycle detection
//	johnson/     — vertex price function for Johnson's reweighting
//	fastcomp/    — parallel connected components (pointer-jumping)
//	boruvka/     — parallel minimum spanning tree (conformance example)
//	galeshapley/ — stable matching (conformance example)
//	graph/       — weighted digraph, undirected graph and array value types
//	loader/      — text-file loaders for the four input formats
//	dispatch/    — name-keyed algorithm dispatcher
//	cmd/llp/     — CLI front-end over dispatch
//
// Every algorithm instance is single-use: it is constructed around input
// data, allocates its state vector at the bottom of its lattice, calls
// Solve to drive the orchestrator's outer loop to a fixed point, then
// projects its state to the caller-visible result.
package llp
