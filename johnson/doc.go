// Package johnson implements Johnson's vertex price function as an LLP
// instance: a reweighting pass that computes, for every vertex, a price
// that climbs from 0 toward max(price[v], max over incoming u→v of
// price[u] - w(u,v)) — the same budgeted relaxation shape as bellmanford,
// but seeded from all vertices at once instead of a single source, and
// rising instead of falling (see DESIGN.md for why the lattice runs this
// direction).
//
// The resulting price[] function is what the rest of Johnson's algorithm
// (not implemented here) would use to reweight every edge
// w'(u,v) = w(u,v) + price[v] - price[u] before running per-source
// Dijkstra on the reweighted, now-nonnegative graph.
package johnson
