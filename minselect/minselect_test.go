package minselect_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ccgraph/cgraph"
	"github.com/katalvlaran/ccgraph/minselect"
	"github.com/stretchr/testify/require"
)

func build(edges [][2]cgraph.VertexID) *cgraph.Graph {
	g := cgraph.New(cgraph.Undirected)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestIsolatedVertexEmitsNothing(t *testing.T) {
	g := cgraph.New(cgraph.Undirected)
	g.EnsureVertex(5)

	h, err := minselect.Run(context.Background(), g, 2)
	require.NoError(t, err)
	require.False(t, h.HasVertex(5))
}

func TestSelfLoopEmitsSelfEdge(t *testing.T) {
	g := build([][2]cgraph.VertexID{{0, 0}})

	h, err := minselect.Run(context.Background(), g, 2)
	require.NoError(t, err)
	require.ElementsMatch(t, []cgraph.VertexID{0}, h.Neighborhoods()[0])
}

func TestTwoDisjointEdges(t *testing.T) {
	g := build([][2]cgraph.VertexID{{1, 2}, {3, 4}})

	h, err := minselect.Run(context.Background(), g, 2)
	require.NoError(t, err)

	// 1 is the local minimum of {1,2}; its neighbor 2 has vmin(2)=1, so
	// 2 → 1 is emitted. 2's own non-minimum case also redirects its
	// neighbor 1 toward vmin(2)=1, landing a self-loop on 1 — the "seed
	// case" pattern that lets a component's minimum survive pruning.
	require.ElementsMatch(t, []cgraph.VertexID{1}, h.Neighborhoods()[2])
	require.ElementsMatch(t, []cgraph.VertexID{1}, h.Neighborhoods()[1])
	require.ElementsMatch(t, []cgraph.VertexID{3}, h.Neighborhoods()[4])
	require.ElementsMatch(t, []cgraph.VertexID{3}, h.Neighborhoods()[3])
}

func TestTriangle(t *testing.T) {
	g := build([][2]cgraph.VertexID{{1, 2}, {2, 3}, {1, 3}})

	h, err := minselect.Run(context.Background(), g, 4)
	require.NoError(t, err)

	// 1 is the closed-neighborhood minimum for every vertex; 2 and 3 both
	// redirect their neighbors (including 1 itself) toward 1, landing a
	// self-loop on 1.
	require.ElementsMatch(t, []cgraph.VertexID{1}, h.Neighborhoods()[2])
	require.ElementsMatch(t, []cgraph.VertexID{1}, h.Neighborhoods()[3])
	require.ElementsMatch(t, []cgraph.VertexID{1}, h.Neighborhoods()[1])
}

func TestStarAroundMax(t *testing.T) {
	g := build([][2]cgraph.VertexID{{10, 1}, {10, 2}, {10, 3}})

	h, err := minselect.Run(context.Background(), g, 4)
	require.NoError(t, err)

	// 10 is not its own vmin (vmin(10)=1): it redirects itself and every
	// neighbor toward 1.
	require.Contains(t, h.Neighborhoods()[10], cgraph.VertexID(1))
}
