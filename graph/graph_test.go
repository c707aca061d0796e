package graph_test

import (
	"testing"

	"github.com/katalvlaran/llp/graph"
	"github.com/stretchr/testify/require"
)

func TestIntArray_PaddingAndTrim(t *testing.T) {
	t.Parallel()

	a := graph.NewIntArray([]int64{1, 2, 3, 4, 5, 6, 7})
	require.Equal(t, 7, a.Len())
	require.Equal(t, 8, a.PaddedLen())
	require.Equal(t, int64(7), a.At(6))
	require.Equal(t, int64(0), a.At(7)) // zero-filled pad slot

	empty := graph.NewIntArray(nil)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 1, empty.PaddedLen())
}

func TestWeightedDigraph_ParentsTracksIncomingArcs(t *testing.T) {
	t.Parallel()

	g, err := graph.NewWeightedDigraph(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, -1))
	require.NoError(t, g.AddEdge(1, 2, 5))

	require.Equal(t, int64(10), g.Weight(0, 1))
	require.Equal(t, graph.Sentinel, g.Weight(3, 0))
	require.False(t, g.HasEdge(2, 0))

	parents2 := g.Parents(2)
	require.Len(t, parents2, 2)

	err = g.AddEdge(0, 2, -5) // overwrite should replace, not duplicate, the parent entry
	require.NoError(t, err)
	require.Len(t, g.Parents(2), 2)
	require.Equal(t, int64(-5), g.Weight(0, 2))
}

func TestWeightedDigraph_OutOfRange(t *testing.T) {
	t.Parallel()

	g, err := graph.NewWeightedDigraph(2)
	require.NoError(t, err)
	require.ErrorIs(t, g.AddEdge(0, 5, 1), graph.ErrVertexOutOfRange)
}

func TestUndirectedGraph_SymmetrizesEdges(t *testing.T) {
	t.Parallel()

	g, err := graph.NewUndirectedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	require.Equal(t, []int{1}, g.Neighbors(0))
	require.Equal(t, []int{0}, g.Neighbors(1))
	require.Empty(t, g.Neighbors(2))
}

func TestWeightedUndirectedGraph_Incidence(t *testing.T) {
	t.Parallel()

	g, err := graph.NewWeightedUndirectedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 3))

	require.Equal(t, 2, g.M())
	require.Equal(t, []int{0}, g.Incident(0))
	require.Equal(t, []int{0, 1}, g.Incident(1))
	require.Equal(t, int64(7), g.Edge(0).Weight)
}
