package graph

// UndirectedGraph is the unweighted, symmetric adjacency representation
// FastComponents runs on: every neighbor v of u is loaded as both u→v and
// v→u, so Neighbors(v) always returns a symmetric relation regardless of
// how the input file expressed it.
//
// FastComponents' outer forbidden predicate (parent[v] < parent[u] for some
// neighbor u) requires this symmetry; applying it to a genuinely directed
// adjacency would silently miscompute components.
type UndirectedGraph struct {
	n         int
	neighbors [][]int
}

// NewUndirectedGraph allocates an n-vertex graph with no edges.
func NewUndirectedGraph(n int) (*UndirectedGraph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &UndirectedGraph{n: n, neighbors: make([][]int, n)}, nil
}

// N returns the vertex count.
func (g *UndirectedGraph) N() int { return g.n }

// AddEdge records an undirected edge between u and v, symmetrizing it into
// both adjacency lists. Self-loops are recorded once. Duplicate edges are
// kept (this representation does not deduplicate parallel edges; callers
// that must not double-count neighbors should dedupe in the loader).
func (g *UndirectedGraph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}

	g.neighbors[u] = append(g.neighbors[u], v)
	if u != v {
		g.neighbors[v] = append(g.neighbors[v], u)
	}

	return nil
}

// Neighbors returns v's adjacency list. The returned slice is owned by g
// and must not be mutated by the caller.
func (g *UndirectedGraph) Neighbors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	return g.neighbors[v]
}
