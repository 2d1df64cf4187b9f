package ccl_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ccgraph/ccl"
	"github.com/katalvlaran/ccgraph/cgraph"
	"github.com/stretchr/testify/require"
)

func edges(pairs ...[2]cgraph.VertexID) []cgraph.Edge {
	out := make([]cgraph.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = cgraph.Edge{U: p[0], V: p[1]}
	}
	return out
}

func TestEmptyGraph(t *testing.T) {
	seeds, stats, err := ccl.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, seeds)
	require.Equal(t, 0, stats.Rounds)
}

func TestSingleSelfLoop(t *testing.T) {
	seeds, _, err := ccl.Run(context.Background(), edges([2]cgraph.VertexID{0, 0}))
	require.NoError(t, err)
	require.Equal(t, map[cgraph.VertexID]cgraph.VertexID{0: 0}, seeds)
}

func TestTwoDisjointEdges(t *testing.T) {
	seeds, _, err := ccl.Run(context.Background(), edges([2]cgraph.VertexID{1, 2}, [2]cgraph.VertexID{3, 4}))
	require.NoError(t, err)
	require.Equal(t, map[cgraph.VertexID]cgraph.VertexID{1: 1, 2: 1, 3: 3, 4: 3}, seeds)
}

func TestTriangle(t *testing.T) {
	seeds, _, err := ccl.Run(context.Background(), edges(
		[2]cgraph.VertexID{1, 2}, [2]cgraph.VertexID{2, 3}, [2]cgraph.VertexID{1, 3}))
	require.NoError(t, err)
	require.Equal(t, map[cgraph.VertexID]cgraph.VertexID{1: 1, 2: 1, 3: 1}, seeds)
}

func TestPath(t *testing.T) {
	seeds, _, err := ccl.Run(context.Background(), edges(
		[2]cgraph.VertexID{5, 6}, [2]cgraph.VertexID{6, 7}, [2]cgraph.VertexID{7, 8}))
	require.NoError(t, err)
	require.Equal(t, map[cgraph.VertexID]cgraph.VertexID{5: 5, 6: 5, 7: 5, 8: 5}, seeds)
}

func TestStarAroundMax(t *testing.T) {
	seeds, _, err := ccl.Run(context.Background(), edges(
		[2]cgraph.VertexID{10, 1}, [2]cgraph.VertexID{10, 2}, [2]cgraph.VertexID{10, 3}))
	require.NoError(t, err)
	require.Equal(t, map[cgraph.VertexID]cgraph.VertexID{1: 1, 2: 1, 3: 1, 10: 1}, seeds)
}

func TestLargerComponentAndDeterminismAcrossWorkerCounts(t *testing.T) {
	input := edges(
		[2]cgraph.VertexID{1, 2}, [2]cgraph.VertexID{2, 3}, [2]cgraph.VertexID{3, 4},
		[2]cgraph.VertexID{4, 5}, [2]cgraph.VertexID{5, 1}, [2]cgraph.VertexID{6, 7},
		[2]cgraph.VertexID{7, 8}, [2]cgraph.VertexID{100, 101}, [2]cgraph.VertexID{101, 102},
		[2]cgraph.VertexID{102, 100},
	)

	var first map[cgraph.VertexID]cgraph.VertexID
	for i, workers := range []int{0, 1, 2, 8} {
		seeds, _, err := ccl.Run(context.Background(), input, ccl.WithWorkers(workers))
		require.NoError(t, err)
		if i == 0 {
			first = seeds
			continue
		}
		require.Equal(t, first, seeds, "worker count must not change the result")
	}

	require.Equal(t, cgraph.VertexID(1), first[1])
	require.Equal(t, cgraph.VertexID(1), first[5])
	require.Equal(t, cgraph.VertexID(6), first[8])
	require.Equal(t, cgraph.VertexID(100), first[102])
}

func TestDoublingEdgesDoesNotChangeResult(t *testing.T) {
	base := edges([2]cgraph.VertexID{1, 2}, [2]cgraph.VertexID{2, 3})
	doubled := append(append([]cgraph.Edge{}, base...),
		cgraph.Edge{U: 2, V: 1}, cgraph.Edge{U: 3, V: 2})

	seedsBase, _, err := ccl.Run(context.Background(), base)
	require.NoError(t, err)
	seedsDoubled, _, err := ccl.Run(context.Background(), doubled)
	require.NoError(t, err)

	require.Equal(t, seedsBase, seedsDoubled)
}

func TestVertexPermutationPreservesComponentStructure(t *testing.T) {
	// order-preserving bijection: add a constant offset to every ID.
	const offset = 1000
	original := edges([2]cgraph.VertexID{1, 2}, [2]cgraph.VertexID{2, 3}, [2]cgraph.VertexID{10, 11})
	shifted := make([]cgraph.Edge, len(original))
	for i, e := range original {
		shifted[i] = cgraph.Edge{U: e.U + offset, V: e.V + offset}
	}

	seedsOriginal, _, err := ccl.Run(context.Background(), original)
	require.NoError(t, err)
	seedsShifted, _, err := ccl.Run(context.Background(), shifted)
	require.NoError(t, err)

	for v, s := range seedsOriginal {
		require.Equal(t, s+offset, seedsShifted[v+offset])
	}
}
