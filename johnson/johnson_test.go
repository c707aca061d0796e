package johnson_test

import (
	"testing"

	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/johnson"
	"github.com/stretchr/testify/require"
)

func mustWeightedDigraph(t *testing.T, n int, edges [][3]int64) *graph.WeightedDigraph {
	t.Helper()

	g, err := graph.NewWeightedDigraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// TestJohnson_PricesAreNonNegative checks the defining property of
// Johnson's price function: every price climbs from the zero bottom, so
// no price can fall below its initial value 0.
func TestJohnson_PricesAreNonNegative(t *testing.T) {
	t.Parallel()

	g := mustWeightedDigraph(t, 4, [][3]int64{
		{0, 1, -2}, {1, 2, -1}, {2, 3, -3}, {0, 3, 1},
	})
	in := johnson.New(g, 4)
	defer in.Close()

	require.NoError(t, in.Solve())
	price, err := in.Result()
	require.NoError(t, err)
	for _, p := range price {
		require.GreaterOrEqual(t, p, int64(0))
	}
	require.Equal(t, []int64{0, 2, 3, 6}, price)
}

// TestJohnson_ReweightingIsNonNegative checks the property Johnson's
// reweighting exists to guarantee: w(u,v) + price[v] - price[u] >= 0 for
// every edge, once a valid price function has been found.
func TestJohnson_ReweightingIsNonNegative(t *testing.T) {
	t.Parallel()

	edges := [][3]int64{
		{0, 1, -2}, {1, 2, -1}, {2, 3, -3}, {0, 3, 1}, {3, 0, 10},
	}
	g := mustWeightedDigraph(t, 4, edges)
	in := johnson.New(g, 4)
	defer in.Close()

	require.NoError(t, in.Solve())
	price, err := in.Result()
	require.NoError(t, err)

	for _, e := range edges {
		reweighted := e[2] + price[e[1]] - price[e[0]]
		require.GreaterOrEqual(t, reweighted, int64(0), "edge %v", e)
	}
}

func TestJohnson_NegativeCycle(t *testing.T) {
	t.Parallel()

	g := mustWeightedDigraph(t, 3, [][3]int64{
		{0, 1, 1}, {1, 2, -3}, {2, 1, 1},
	})
	in := johnson.New(g, 2)
	defer in.Close()

	require.NoError(t, in.Solve())
	_, err := in.Result()
	require.ErrorIs(t, err, johnson.ErrNegativeCycle)
}
