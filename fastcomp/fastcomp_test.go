package fastcomp_test

import (
	"testing"

	"github.com/katalvlaran/llp/fastcomp"
	"github.com/katalvlaran/llp/graph"
	"github.com/stretchr/testify/require"
)

func mustUndirectedGraph(t *testing.T, n int, edges [][2]int) *graph.UndirectedGraph {
	t.Helper()

	g, err := graph.NewUndirectedGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestFastComp_TwoComponents checks the defining property: parent[v] is
// constant within a component and differs across components, with the
// representative being the largest-indexed vertex in each.
func TestFastComp_TwoComponents(t *testing.T) {
	t.Parallel()

	g := mustUndirectedGraph(t, 6, [][2]int{
		{0, 1}, {1, 2}, // component {0,1,2}, representative 2
		{3, 4}, {4, 5}, // component {3,4,5}, representative 5
	})
	in := fastcomp.New(g, 4)
	defer in.Close()

	require.NoError(t, in.Solve())
	parent := in.Result()

	require.Equal(t, 2, parent[0])
	require.Equal(t, 2, parent[1])
	require.Equal(t, 2, parent[2])
	require.Equal(t, 5, parent[3])
	require.Equal(t, 5, parent[4])
	require.Equal(t, 5, parent[5])
}

func TestFastComp_IsolatedVertices(t *testing.T) {
	t.Parallel()

	g := mustUndirectedGraph(t, 3, nil)
	in := fastcomp.New(g, 2)
	defer in.Close()

	require.NoError(t, in.Solve())
	require.Equal(t, []int{0, 1, 2}, in.Result())
}

// TestFastComp_RootedStar checks the rooted-star invariant directly:
// parent[parent[v]] == parent[v] for every v at termination.
func TestFastComp_RootedStar(t *testing.T) {
	t.Parallel()

	g := mustUndirectedGraph(t, 7, [][2]int{
		{0, 2}, {2, 4}, {4, 6}, {1, 3}, {3, 5},
	})
	in := fastcomp.New(g, 3)
	defer in.Close()

	require.NoError(t, in.Solve())
	parent := in.Result()
	for v, p := range parent {
		require.Equal(t, parent[p], p, "vertex %d not a rooted star", v)
	}
}
