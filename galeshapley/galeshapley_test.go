package galeshapley_test

import (
	"testing"

	"github.com/katalvlaran/llp/galeshapley"
	"github.com/stretchr/testify/require"
)

// TestGaleShapley_Stable checks the defining property: no proposer p and
// responder r who are not matched to each other both prefer each other
// over their current partners (no blocking pair).
func TestGaleShapley_Stable(t *testing.T) {
	t.Parallel()

	// Classic 3x3 instance (Gale & Shapley 1962-style).
	proposerPrefs := [][]int{
		{0, 1, 2},
		{1, 0, 2},
		{0, 1, 2},
	}
	responderPrefs := [][]int{
		{1, 0, 2},
		{0, 1, 2},
		{0, 1, 2},
	}

	in := galeshapley.New(proposerPrefs, 3, 2)
	defer in.Close()
	require.NoError(t, in.Solve())

	match := in.Result()
	for p := range match {
		require.NotEqual(t, -1, match[p], "proposer %d unmatched", p)
	}

	responderRankOf := func(r, p int) int {
		for rank, cand := range responderPrefs[r] {
			if cand == p {
				return rank
			}
		}
		return len(responderPrefs[r])
	}
	proposerRankOf := func(p, r int) int {
		for rank, cand := range proposerPrefs[p] {
			if cand == r {
				return rank
			}
		}
		return len(proposerPrefs[p])
	}

	responderMatch := make([]int, 3)
	for p, r := range match {
		responderMatch[r] = p
	}

	for p := 0; p < 3; p++ {
		for r := 0; r < 3; r++ {
			if match[p] == r {
				continue
			}
			pPrefersR := proposerRankOf(p, r) < proposerRankOf(p, match[p])
			rPrefersP := responderRankOf(r, p) < responderRankOf(r, responderMatch[r])
			require.False(t, pPrefersR && rPrefersP, "blocking pair (%d, %d)", p, r)
		}
	}
}

func TestGaleShapley_SingleMatch(t *testing.T) {
	t.Parallel()

	in := galeshapley.New([][]int{{0}}, 1, 1)
	defer in.Close()
	require.NoError(t, in.Solve())
	require.Equal(t, []int{0}, in.Result())
}
