// Package llp_test exercises the orchestrator against a minimal synthetic
// contract: each coordinate counts up from 0 to a per-index target, one
// unit per advance wave. This isolates the universal orchestrator
// properties from any one algorithm's lattice.
package llp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/llp"
	"github.com/stretchr/testify/require"
)

// counterContract advances G[v] by 1 per wave until it reaches target[v].
type counterContract struct {
	g      []int
	target []int
}

func (c *counterContract) N() int                  { return len(c.g) }
func (c *counterContract) Eligible(int) bool        { return true }
func (c *counterContract) NumForbiddens() int       { return 1 }
func (c *counterContract) NumAdvanceSteps() int     { return 1 }
func (c *counterContract) SelectionForStep(int) llp.Predicate { return nil }

func (c *counterContract) Forbidden(kind, v int) bool {
	return c.g[v] < c.target[v]
}

func (c *counterContract) AdvanceStep(stepIdx, v int) error {
	c.g[v]++
	return nil
}

func TestSolve_ReachesFixedPoint(t *testing.T) {
	t.Parallel()

	c := &counterContract{
		g:      make([]int, 16),
		target: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	}
	pool := executor.New(4)
	defer pool.Close()

	require.NoError(t, llp.Solve(pool, c))

	for v := range c.g {
		require.Equal(t, c.target[v], c.g[v], "index %d", v)
	}
}

func TestSolve_EmptyInstanceTerminatesImmediately(t *testing.T) {
	t.Parallel()

	c := &counterContract{g: nil, target: nil}
	pool := executor.New(2)
	defer pool.Close()

	require.NoError(t, llp.Solve(pool, c))
}

// multiStepContract advances a 2-coordinate vector in two ordered sub-steps
// per wave, to exercise phase ordering: step 1 must observe step 0's write.
type multiStepContract struct {
	a, b       int
	aTarget    int
	bSeenFinal bool
}

func (c *multiStepContract) N() int              { return 2 }
func (c *multiStepContract) Eligible(int) bool    { return true }
func (c *multiStepContract) NumForbiddens() int   { return 1 }
func (c *multiStepContract) NumAdvanceSteps() int { return 2 }
func (c *multiStepContract) SelectionForStep(int) llp.Predicate { return nil }

func (c *multiStepContract) Forbidden(kind, v int) bool {
	return c.a < c.aTarget
}

func (c *multiStepContract) AdvanceStep(stepIdx, v int) error {
	switch stepIdx {
	case 0:
		if v == 0 { // index 0 owns a
			c.a++
		}
	case 1:
		if v == 1 { // index 1 owns b
			// step 1 must see step 0's write within the same wave
			if c.a == c.aTarget {
				c.bSeenFinal = true
			}
			c.b++
		}
	}
	return nil
}

func TestAdvance_SubStepsAreOrderedWithVisibleWrites(t *testing.T) {
	t.Parallel()

	c := &multiStepContract{aTarget: 1}
	pool := executor.New(2)
	defer pool.Close()

	require.NoError(t, llp.Solve(pool, c))
	require.True(t, c.bSeenFinal)
}

type failingContract struct {
	n int
}

func (c *failingContract) N() int              { return c.n }
func (c *failingContract) Eligible(int) bool    { return true }
func (c *failingContract) NumForbiddens() int   { return 1 }
func (c *failingContract) NumAdvanceSteps() int { return 1 }
func (c *failingContract) SelectionForStep(int) llp.Predicate { return nil }
func (c *failingContract) Forbidden(kind, v int) bool { return true }

func (c *failingContract) AdvanceStep(stepIdx, v int) error {
	if v == c.n/2 {
		return errors.New("advance exploded")
	}
	return nil
}

func TestSolve_PropagatesWorkerFailure(t *testing.T) {
	t.Parallel()

	c := &failingContract{n: 10}
	pool := executor.New(4)
	defer pool.Close()

	err := llp.Solve(pool, c)
	require.Error(t, err)
}
