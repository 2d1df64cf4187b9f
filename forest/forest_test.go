package forest_test

import (
	"testing"

	"github.com/katalvlaran/ccgraph/forest"
	"github.com/stretchr/testify/require"
)

func TestAddParentAndLookup(t *testing.T) {
	f := forest.New()
	require.NoError(t, f.AddParent(1, 2))

	p, ok := f.Parent(2)
	require.True(t, ok)
	require.Equal(t, uint32(1), p)

	_, ok = f.Parent(1)
	require.False(t, ok)
}

func TestAddParentRejectsSecondParent(t *testing.T) {
	f := forest.New()
	require.NoError(t, f.AddParent(1, 3))
	require.ErrorIs(t, f.AddParent(2, 3), forest.ErrMultipleParents)
}

func TestNodesAndSize(t *testing.T) {
	f := forest.New()
	require.NoError(t, f.AddParent(1, 2))
	require.NoError(t, f.AddParent(1, 3))

	require.Equal(t, 2, f.Size())
	require.ElementsMatch(t, []uint32{1, 2, 3}, f.Nodes())
}
