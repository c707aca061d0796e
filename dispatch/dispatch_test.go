package dispatch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/llp/dispatch"
	"github.com/katalvlaran/llp/llperr"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Reduce(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "4\n1 2 3 4\n")
	res, err := dispatch.Run("Reduce", path)
	require.NoError(t, err)
	require.False(t, res.NoResult)
	require.Equal(t, int64(10), res.Values[0])
}

func TestRun_PrefixSum(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "4\n1 2 3 4\n")
	res, err := dispatch.Run("PrefixSum", path)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3, 6, 10}, res.Values)
}

func TestRun_BellmanFordNegativeCycle(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "3\n1\n1\n2\n-3\n1\n1\n")
	res, err := dispatch.Run("BellmanFord", path)
	require.NoError(t, err)
	require.True(t, res.NoResult)
	require.NotEmpty(t, res.Reason)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "1\n1\n")
	_, err := dispatch.Run("NoSuchAlgorithm", path)
	require.ErrorIs(t, err, llperr.ErrUnknownAlgorithm)
}
