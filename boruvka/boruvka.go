package boruvka

import (
	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/graph"
)

// candidate is one vertex's cheapest crossing edge this round.
type candidate struct {
	edge   int // index into g.Edges(), -1 if none found
	weight int64
}

// Instance is the Borůvka MST conformance instance.
type Instance struct {
	g      *graph.WeightedUndirectedGraph
	n      int
	parent []int // union-find parent (union by rank, no path compression)
	rank   []int
	mst    []int // chosen edge indices, in the order they were added

	best []candidate // per-vertex scratch, refreshed every round

	pool   *executor.Pool
	closed bool
}

// New constructs a Borůvka instance over g. maxWorkers bounds the internal
// worker pool (0 defaults to GOMAXPROCS).
func New(g *graph.WeightedUndirectedGraph, maxWorkers int) *Instance {
	n := g.N()
	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	return &Instance{
		g:      g,
		n:      n,
		parent: parent,
		rank:   make([]int, n),
		best:   make([]candidate, n),
		pool:   executor.New(maxWorkers),
	}
}

func (in *Instance) find(v int) int {
	for in.parent[v] != v {
		v = in.parent[v]
	}
	return v
}

// union merges the components of u and v by rank, returning false if they
// were already the same component.
func (in *Instance) union(u, v int) bool {
	ru, rv := in.find(u), in.find(v)
	if ru == rv {
		return false
	}
	switch {
	case in.rank[ru] < in.rank[rv]:
		ru, rv = rv, ru
	case in.rank[ru] == in.rank[rv]:
		in.rank[ru]++
	}
	in.parent[rv] = ru
	return true
}

// Solve runs Borůvka's algorithm to completion: repeated rounds of
// parallel cheapest-crossing-edge discovery followed by sequential
// contraction, until a single component remains or no crossing edge
// exists (a disconnected graph).
func (in *Instance) Solve() error {
	for {
		roots := make([]int, in.n)
		numComponents := 0
		for v := 0; v < in.n; v++ {
			roots[v] = in.find(v)
			if roots[v] == v {
				numComponents++
			}
		}
		if numComponents <= 1 {
			return nil
		}

		err := in.pool.InvokeRangeAndJoin(in.n, func(v int) error {
			best := candidate{edge: -1}
			for _, idx := range in.g.Incident(v) {
				e := in.g.Edge(idx)
				other := e.U
				if other == v {
					other = e.V
				}
				if roots[other] == roots[v] {
					continue // internal edge, not a merge candidate
				}
				if best.edge == -1 || e.Weight < best.weight {
					best = candidate{edge: idx, weight: e.Weight}
				}
			}
			in.best[v] = best
			return nil
		})
		if err != nil {
			return err
		}

		// Sequentially reduce per-vertex winners to one winner per
		// component, then union them in. Small and race-free by
		// construction: this step never runs concurrently with itself.
		winnerForRoot := make(map[int]int) // root -> edge index
		for v := 0; v < in.n; v++ {
			c := in.best[v]
			if c.edge == -1 {
				continue
			}
			root := roots[v]
			if cur, ok := winnerForRoot[root]; !ok || c.weight < in.g.Edge(cur).Weight {
				winnerForRoot[root] = c.edge
			}
		}

		merged := false
		for _, idx := range winnerForRoot {
			e := in.g.Edge(idx)
			if in.union(e.U, e.V) {
				in.mst = append(in.mst, idx)
				merged = true
			}
		}
		if !merged {
			return nil // disconnected: no further crossing edges exist
		}
	}
}

// Close releases the instance's worker pool.
func (in *Instance) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.pool.Close()
}

// Result returns the indices (into the input graph's edge list) of the
// edges chosen for the minimum spanning forest.
func (in *Instance) Result() []int {
	out := make([]int, len(in.mst))
	copy(out, in.mst)
	return out
}
