package johnson

import (
	"errors"

	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/llp"
)

// ErrNegativeCycle is returned by Result when the graph contains a
// negative-weight cycle: Johnson's reweighting is only well-defined on
// graphs without one, so no price function is returned once detected
// (see DESIGN.md).
var ErrNegativeCycle = errors.New("johnson: graph contains a negative-weight cycle")

// Instance is Johnson's price-function LLP instance: every vertex starts
// at price 0 — the lattice bottom — equivalent to an implicit virtual
// source with a zero-weight edge to every vertex, and rises toward
// price[v] = max(price[v], max over incoming u→v of price[u] - w(u,v)),
// budgeted at n rounds (one more than bellmanford's n-1, since the
// augmented graph has n+1 vertices). Unlike bellmanford's decreasing
// distance lattice, price climbs monotonically from 0 (see DESIGN.md for
// why this direction, not the reverse, is the one that keeps the
// reweighting guarantee w(u,v) + price[v] - price[u] >= 0 intact).
type Instance struct {
	g      *graph.WeightedDigraph
	n      int
	price  []int64
	budget []int
	temp   []int64

	pool     *executor.Pool
	closed   bool
	negCycle bool
}

// New constructs a Johnson price-function instance over g. maxWorkers
// bounds the internal worker pool (0 defaults to GOMAXPROCS).
func New(g *graph.WeightedDigraph, maxWorkers int) *Instance {
	n := g.N()
	budget := make([]int, n)
	for v := range budget {
		budget[v] = n
	}

	return &Instance{
		g:      g,
		n:      n,
		price:  make([]int64, n), // zero-valued: every vertex starts at price 0
		budget: budget,
		temp:   make([]int64, n),
		pool:   executor.New(maxWorkers),
	}
}

// Solve drives the instance to its fixed point, then performs a final
// unbudgeted relaxation sweep to detect a negative-weight cycle anywhere
// in g.
func (in *Instance) Solve() error {
	if err := llp.Solve(in.pool, in); err != nil {
		return err
	}

	for v := 0; v < in.n; v++ {
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

// Result returns the price function, or ErrNegativeCycle if g contains a
// negative-weight cycle.
func (in *Instance) Result() ([]int64, error) {
	if in.negCycle {
		return nil, ErrNegativeCycle
	}

	out := make([]int64, in.n)
	copy(out, in.price)

	return out, nil
}

// --- llp.Contract ---

func (in *Instance) N() int { return in.n }

// Eligible reports whether v still has relaxation rounds left in its
// budget. Unlike bellmanford, every vertex participates — there is no
// single fixed source.
func (in *Instance) Eligible(v int) bool { return in.budget[v] > 0 }

func (in *Instance) NumForbiddens() int   { return 1 }
func (in *Instance) NumAdvanceSteps() int { return 1 }

func (in *Instance) SelectionForStep(int) llp.Predicate { return nil }

// Forbidden reports whether some incoming arc u→v raises v's current
// price — price[v] < price[u] - w(u,v) — staging the new maximum into
// temp[v]. This is the increasing half of the lattice: price only ever
// climbs from its 0 bottom, the reverse of bellmanford's decreasing
// distance relaxation.
func (in *Instance) Forbidden(_, v int) bool {
	best := in.price[v]
	relaxed := false
	for _, arc := range in.g.Parents(v) {
		cand := in.price[arc.From] - arc.Weight
		if cand > best {
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

// AdvanceStep commits the staged price and spends one round of v's
// progress budget.
func (in *Instance) AdvanceStep(_, v int) error {
	in.price[v] = in.temp[v]
	in.budget[v]--

	return nil
}
