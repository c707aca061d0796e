package fastcomp

import (
	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/iset"
	"github.com/katalvlaran/llp/llp"
)

// Instance is the FastComponents LLP instance: parent[v] and vmax[v],
// initially parent[v]=v, converging to a rooted star per
// connected component whose root is the component's largest-indexed
// vertex.
type Instance struct {
	g      *graph.UndirectedGraph
	n      int
	parent []int
	vmax   []int

	parentSnap []int // frozen parent[] read during hook-roots and pointer-jump

	pool   *executor.Pool
	closed bool
}

// New constructs a FastComponents instance over g. maxWorkers bounds the
// internal worker pool (0 defaults to GOMAXPROCS).
func New(g *graph.UndirectedGraph, maxWorkers int) *Instance {
	n := g.N()
	parent := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	return &Instance{
		g:          g,
		n:          n,
		parent:     parent,
		vmax:       make([]int, n),
		parentSnap: make([]int, n),
		pool:       executor.New(maxWorkers),
	}
}

// Solve drives the outer fixed point, running the inner pointer-jump loop
// to convergence inside every outer round.
func (in *Instance) Solve() error {
	outer := iset.New(in.n)

	for {
		hasForb, err := llp.CollectForbidden(in.pool, in, 0, outer)
		if err != nil {
			return err
		}
		if !hasForb {
			return nil
		}

		wave := outer.Slice()

		// Sub-step 1: compute vmax over the wave, reading parent[] live —
		// nothing writes parent[] until the next sub-step.
		if err := in.pool.InvokeAllAndJoin(wave, func(v int) error {
			best := in.parent[v]
			for _, u := range in.g.Neighbors(v) {
				if in.parent[u] > best {
					best = in.parent[u]
				}
			}
			in.vmax[v] = best
			return nil
		}); err != nil {
			return err
		}

		// Sub-step 2: hook roots. Freeze parent[] first so that one root's
		// commit can never be observed mid-write by another root's scan for
		// its children.
		copy(in.parentSnap, in.parent)
		if err := in.pool.InvokeAllAndJoin(wave, func(v int) error {
			if in.parentSnap[v] != v {
				return nil // not a root this round, untouched
			}
			best := in.vmax[v]
			for u := 0; u < in.n; u++ {
				if in.parentSnap[u] == v && in.vmax[u] > best {
					best = in.vmax[u]
				}
			}
			in.parent[v] = best
			return nil
		}); err != nil {
			return err
		}

		// Sub-step 3: pointer-jump to rooted stars, to its own inner fixed
		// point, over every vertex (not just the outer wave).
		if err := in.jumpToFixedPoint(); err != nil {
			return err
		}
	}
}

func (in *Instance) jumpToFixedPoint() error {
	inner := iset.New(in.n)

	for {
		hasForb, err := llp.CollectForbidden(in.pool, in, 1, inner)
		if err != nil {
			return err
		}
		if !hasForb {
			return nil
		}

		copy(in.parentSnap, in.parent)
		indices := inner.Slice()
		if err := in.pool.InvokeAllAndJoin(indices, func(v int) error {
			in.parent[v] = in.parentSnap[in.parentSnap[v]]
			return nil
		}); err != nil {
			return err
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

// Result returns parent[], in which every vertex points to its component's
// representative.
func (in *Instance) Result() []int {
	out := make([]int, in.n)
	copy(out, in.parent)
	return out
}

// --- llp.Contract ---

func (in *Instance) N() int              { return in.n }
func (in *Instance) Eligible(int) bool   { return true }
func (in *Instance) NumForbiddens() int  { return 2 }

// NumAdvanceSteps is nominal here: Solve drives its own advance entirely
// outside of llp.Advance, so this is never consulted by the generic
// orchestrator.
func (in *Instance) NumAdvanceSteps() int { return 0 }

func (in *Instance) SelectionForStep(int) llp.Predicate { return nil }

// Forbidden implements both the outer (kind 0) and inner (kind 1)
// predicates.
func (in *Instance) Forbidden(kind, v int) bool {
	if kind == 0 {
		for _, u := range in.g.Neighbors(v) {
			if in.parent[v] < in.parent[u] {
				return true
			}
		}
		return false
	}

	return in.parent[v] != in.parent[in.parent[v]]
}

// AdvanceStep is unused: Solve commits every sub-step directly.
func (in *Instance) AdvanceStep(int, int) error { return nil }
