package bellmanford

import (
	"errors"

	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/llp"
)

// ErrNegativeCycle is returned by Result when a negative-weight cycle
// reachable from the source was detected: a vertex still had a relaxing
// arc after exhausting its n-1-round progress budget. Bellman-Ford
// follows Johnson's policy here (see DESIGN.md) — no partial distances
// are returned once a negative cycle is detected, since they are no
// longer well-defined shortest-path distances.
var ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")

// Instance is the Bellman-Ford LLP instance: a tentative distance vector
// d, relaxed in parallel against every incoming arc, with a per-vertex
// progress budget standing in for the classic n-1 round cap.
type Instance struct {
	g      *graph.WeightedDigraph
	source int
	n      int
	d      []int64
	budget []int
	temp   []int64

	pool     *executor.Pool
	closed   bool
	negCycle bool
}

// New constructs a Bellman-Ford instance over g rooted at source.
// maxWorkers bounds the internal worker pool (0 defaults to GOMAXPROCS).
func New(g *graph.WeightedDigraph, source, maxWorkers int) *Instance {
	n := g.N()
	d := make([]int64, n)
	budget := make([]int, n)
	for v := 0; v < n; v++ {
		d[v] = graph.Sentinel
		budget[v] = n - 1
	}
	d[source] = 0

	return &Instance{
		g:      g,
		source: source,
		n:      n,
		d:      d,
		budget: budget,
		temp:   make([]int64, n),
		pool:   executor.New(maxWorkers),
	}
}

// Solve drives the instance to its fixed point, then performs a final
// unbudgeted relaxation sweep to detect a negative cycle reachable from
// the source.
func (in *Instance) Solve() error {
	if err := llp.Solve(in.pool, in); err != nil {
		return err
	}

	for v := 0; v < in.n; v++ {
		if v == in.source {
			continue
		}
		if in.Forbidden(0, v) {
			in.negCycle = true
			break
		}
	}

	return nil
}

// Close releases the instance's worker pool.
func (in *Instance) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.pool.Close()
}

// Result returns the shortest-path distance from the source to every
// vertex (Sentinel for unreachable vertices), or ErrNegativeCycle if a
// negative cycle reachable from the source was detected.
func (in *Instance) Result() ([]int64, error) {
	if in.negCycle {
		return nil, ErrNegativeCycle
	}

	out := make([]int64, in.n)
	copy(out, in.d)

	return out, nil
}

// --- llp.Contract ---

func (in *Instance) N() int { return in.n }

// Eligible reports whether v still has relaxation rounds left in its
// budget. The source is never eligible: it is fixed at distance 0.
func (in *Instance) Eligible(v int) bool {
	return v != in.source && in.budget[v] > 0
}

func (in *Instance) NumForbiddens() int   { return 1 }
func (in *Instance) NumAdvanceSteps() int { return 1 }

func (in *Instance) SelectionForStep(int) llp.Predicate { return nil }

// Forbidden reports whether some incoming arc u→v relaxes v's current
// distance, staging the best candidate into temp[v]. Arcs out of a vertex
// still at Sentinel are skipped, so an unreachable vertex stays exactly at
// Sentinel even when its incoming arcs carry negative weights.
func (in *Instance) Forbidden(_, v int) bool {
	best := in.d[v]
	relaxed := false
	for _, arc := range in.g.Parents(v) {
		if in.d[arc.From] == graph.Sentinel {
			continue
		}
		cand := in.d[arc.From] + arc.Weight
		if cand < best {
			best = cand
			relaxed = true
		}
	}

	if relaxed {
		in.temp[v] = best
		return true
	}
	return false
}

// AdvanceStep commits the staged distance and spends one round of v's
// progress budget.
func (in *Instance) AdvanceStep(_, v int) error {
	in.d[v] = in.temp[v]
	in.budget[v]--

	return nil
}
