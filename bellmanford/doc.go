// Package bellmanford implements single-source shortest paths as an LLP
// instance: a tentative-distance vector d, relaxed against every incoming
// arc, with a per-vertex progress budget of n-1 rounds standing in for
// Bellman-Ford's classic round limit (without a negative cycle, no
// vertex's distance needs to shrink more than n-1 times).
//
// d starts at Sentinel everywhere except the source (0), and decreases
// monotonically — relaxation only ever lowers a distance, matching the
// teacher's dijkstra package's priority relaxation loop, generalized here
// to the budgeted, parallel LLP form.
package bellmanford
