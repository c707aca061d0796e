package prefixsum

import (
	"math"

	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/llp"
	"github.com/katalvlaran/llp/reduce"
)

// bottom is the lattice bottom, as in reduce — small enough it is never
// mistaken for a real running prefix total.
const bottom int64 = math.MinInt64 / 4

// Instance is the PrefixSum LLP instance. It builds its summation tree S
// via an internal reduce.Instance over the same input, then fills its own
// tree G top-down to a fixed point.
type Instance struct {
	a      *graph.IntArray
	padded int // N
	s      []int64
	g, tmp []int64 // size 2N-1, g[0] fixed at 0

	pool   *executor.Pool
	closed bool
}

// New constructs a PrefixSum instance over a. maxWorkers bounds both the
// internal reduce pass and PrefixSum's own worker pool.
func New(a *graph.IntArray, maxWorkers int) *Instance {
	padded := a.PaddedLen()
	size := 2*padded - 1

	g := make([]int64, size)
	tmp := make([]int64, size)
	for i := range g {
		g[i] = bottom
	}
	g[0] = 0 // the root is fixed at the empty prefix

	return &Instance{
		a:      a,
		padded: padded,
		g:      g,
		tmp:    tmp,
		pool:   executor.New(maxWorkers),
	}
}

// Solve first reduces a to its summation tree S, then drives PrefixSum's
// own tree G to its fixed point using S as a read-only side channel.
func (in *Instance) Solve() error {
	red := reduce.New(in.a, in.pool.NumWorkers())
	defer red.Close()
	if err := red.Solve(); err != nil {
		return err
	}
	in.s = red.Tree()

	return llp.Solve(in.pool, in)
}

// Close releases the instance's worker pool.
func (in *Instance) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.pool.Close()
}

// Result returns the inclusive prefix sums P[i] = sum(A[0..i]) for the
// original, un-padded input: leaf node N-1+i of G holds the exclusive
// prefix before position i, so the output step adds A[i] back in.
func (in *Instance) Result() []int64 {
	n := in.a.Len()
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = in.g[in.padded-1+i] + in.a.At(i)
	}
	return out
}

// --- llp.Contract ---

func (in *Instance) N() int { return len(in.g) }

// Eligible excludes v=0: the root is fixed at 0 for the instance's entire
// lifetime and never competes for advancement.
func (in *Instance) Eligible(v int) bool { return v != 0 }

func (in *Instance) NumForbiddens() int   { return 1 }
func (in *Instance) NumAdvanceSteps() int { return 1 }

func (in *Instance) SelectionForStep(int) llp.Predicate { return nil }

// Forbidden implements the three-way forbidden predicate on
// V = v+1: even V copies its parent down unchanged; odd V above the leaf
// level adds in its left sibling's subtree sum from S; odd V at the leaf
// level adds in exactly one input element.
func (in *Instance) Forbidden(_ int, v int) bool {
	bigV := v + 1
	parent := in.g[bigV/2-1]

	var rhs int64
	switch {
	case bigV%2 == 0:
		rhs = parent
	case bigV < in.padded:
		rhs = in.s[bigV-2] + parent
	default:
		rhs = in.a.At(bigV-in.padded-1) + parent
	}

	if in.g[v] < rhs {
		in.tmp[v] = rhs
		return true
	}
	return false
}

// AdvanceStep commits the staged proposal, strictly raising g[v].
func (in *Instance) AdvanceStep(_ int, v int) error {
	in.g[v] = in.tmp[v]
	return nil
}
