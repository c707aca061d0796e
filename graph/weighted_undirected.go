package graph

// WeightedEdge is one entry of a WeightedUndirectedGraph's edge list.
type WeightedEdge struct {
	U, V   int
	Weight int64
}

// WeightedUndirectedGraph is the weighted undirected edge-list
// representation used by Boruvka's parallel MST. Per-vertex incidence (which edges
// touch v) is maintained alongside the edge list so contraction steps can
// enumerate a vertex's incident edges without a linear scan.
type WeightedUndirectedGraph struct {
	n         int
	edges     []WeightedEdge
	incidence [][]int // incidence[v] = indices into edges incident to v
}

// NewWeightedUndirectedGraph allocates an n-vertex graph with no edges.
func NewWeightedUndirectedGraph(n int) (*WeightedUndirectedGraph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &WeightedUndirectedGraph{n: n, incidence: make([][]int, n)}, nil
}

// N returns the vertex count.
func (g *WeightedUndirectedGraph) N() int { return g.n }

// M returns the edge count.
func (g *WeightedUndirectedGraph) M() int { return len(g.edges) }

// AddEdge appends an undirected edge {u, v} with the given weight and
// records it in both endpoints' incidence lists.
func (g *WeightedUndirectedGraph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}

	idx := len(g.edges)
	g.edges = append(g.edges, WeightedEdge{U: u, V: v, Weight: weight})
	g.incidence[u] = append(g.incidence[u], idx)
	if u != v {
		g.incidence[v] = append(g.incidence[v], idx)
	}

	return nil
}

// Edges returns the full edge list. The returned slice is owned by g and
// must not be mutated by the caller.
func (g *WeightedUndirectedGraph) Edges() []WeightedEdge {
	return g.edges
}

// Edge returns the edge at index i.
func (g *WeightedUndirectedGraph) Edge(i int) WeightedEdge {
	return g.edges[i]
}

// Incident returns the indices of edges incident to v. The returned slice
// is owned by g and must not be mutated by the caller.
func (g *WeightedUndirectedGraph) Incident(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	return g.incidence[v]
}
