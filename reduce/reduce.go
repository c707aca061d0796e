package reduce

import (
	"math"

	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/llp"
)

// bottom is the lattice bottom (-∞), chosen small enough that it can
// never be mistaken for a real partial sum of int64 array elements.
const bottom int64 = math.MinInt64 / 4

// Instance is the Reduce LLP instance: a tree-shaped state vector over an
// implicit binary tree, converging to the correct subtree sum at every
// node.
type Instance struct {
	a         *graph.IntArray
	padded    int     // N, the padded leaf count
	leafStart int     // N/2 - 1, the first leaf-parent index
	treeSize  int     // number of tree nodes, max(N-1, 0)
	g, temp   []int64 // state vector and its scratch staging buffer

	pool   *executor.Pool
	closed bool
}

// New constructs a Reduce instance over a. maxWorkers bounds the internal
// worker pool (0 defaults to GOMAXPROCS).
func New(a *graph.IntArray, maxWorkers int) *Instance {
	padded := a.PaddedLen()
	treeSize := padded - 1
	if treeSize < 0 {
		treeSize = 0
	}

	g := make([]int64, treeSize)
	temp := make([]int64, treeSize)
	for i := range g {
		g[i] = bottom
	}

	return &Instance{
		a:         a,
		padded:    padded,
		leafStart: padded / 2 - 1,
		treeSize:  treeSize,
		g:         g,
		temp:      temp,
		pool:      executor.New(maxWorkers),
	}
}

// Solve drives the instance to its fixed point.
func (in *Instance) Solve() error {
	return llp.Solve(in.pool, in)
}

// Close releases the instance's worker pool. Safe to call multiple times
// and safe to call even if Solve returned an error.
func (in *Instance) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.pool.Close()
}

// Tree returns the full internal tree, including nodes beyond the original
// input length — this is what PrefixSum reads as its summation tree S.
// The returned slice is owned by the instance.
func (in *Instance) Tree() []int64 {
	return in.g
}

// Result projects the tree to the caller-visible output: the first n tree
// entries, where n is the original un-padded length. Reduce's output is
// the tree, not just the root, since Reduce is also exported as a utility
// by PrefixSum. graph.IntArray pads strictly above n, so treeSize =
// PaddedLen()-1 is always >= n.
func (in *Instance) Result() []int64 {
	n := in.a.Len()
	if n > len(in.g) {
		n = len(in.g)
	}
	out := make([]int64, n)
	copy(out, in.g[:n])
	return out
}

// --- llp.Contract ---

func (in *Instance) N() int { return in.treeSize }
func (in *Instance) Eligible(int) bool { return true }
func (in *Instance) NumForbiddens() int { return 1 }
func (in *Instance) NumAdvanceSteps() int { return 1 }
func (in *Instance) SelectionForStep(int) llp.Predicate { return nil }

// Forbidden implements the forbidden predicate, staging the combined
// right-hand side into temp[v] for AdvanceStep to commit.
func (in *Instance) Forbidden(_ int, v int) bool {
	var rhs int64
	if v < in.leafStart {
		rhs = in.g[2*v+1] + in.g[2*v+2]
	} else {
		left := 2*v - in.padded + 2
		rhs = in.a.At(left) + in.a.At(left+1)
	}

	if in.g[v] < rhs {
		in.temp[v] = rhs
		return true
	}
	return false
}

// AdvanceStep commits the staged proposal, strictly raising g[v].
func (in *Instance) AdvanceStep(_ int, v int) error {
	in.g[v] = in.temp[v]
	return nil
}
