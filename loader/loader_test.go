package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/loader"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIntArray(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "5\n1 2 3\n4 5\n")
	a, err := loader.LoadIntArray(path)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, a.Values())
}

func TestLoadIntArray_Truncated(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "3\n1 2\n")
	_, err := loader.LoadIntArray(path)
	require.Error(t, err)
}

func TestLoadDirectedMatrix(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "3\n1,2\n5,7\n*\n\n0\n3\n")
	g, err := loader.LoadDirectedMatrix(path)
	require.NoError(t, err)
	require.Equal(t, int64(5), g.Weight(0, 1))
	require.Equal(t, int64(7), g.Weight(0, 2))
	require.Equal(t, graph.Sentinel, g.Weight(1, 0))
	require.Equal(t, int64(3), g.Weight(2, 0))
}

func TestLoadUnweightedUndirected(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "3\n1,2\n0\n0\n")
	g, err := loader.LoadUnweightedUndirected(path)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2}, g.Neighbors(0))
	require.ElementsMatch(t, []int{0}, g.Neighbors(1))
	require.ElementsMatch(t, []int{0}, g.Neighbors(2))
}

func TestLoadWeightedUndirectedEdgeList(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "3\n2\n0 1 4\n1 2 5\n")
	g, err := loader.LoadWeightedUndirectedEdgeList(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.M())
	require.Equal(t, graph.WeightedEdge{U: 0, V: 1, Weight: 4}, g.Edge(0))
}

func TestLoadMatching(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "2\n0 1\n1 0\n1 0\n0 1\n")
	proposers, responders, err := loader.LoadMatching(path)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {1, 0}}, proposers)
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, responders)
}
