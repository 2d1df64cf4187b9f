package edgelist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ccgraph/cgraph"
	"github.com/katalvlaran/ccgraph/internal/edgelist"
	"github.com/stretchr/testify/require"
)

func TestParseBasic(t *testing.T) {
	edges, err := edgelist.Parse(strings.NewReader("1 2\n3 4\n"))
	require.NoError(t, err)
	require.Equal(t, []cgraph.Edge{{U: 1, V: 2}, {U: 3, V: 4}}, edges)
}

func TestParseEmpty(t *testing.T) {
	edges, err := edgelist.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestParseSkipsBlankLines(t *testing.T) {
	edges, err := edgelist.Parse(strings.NewReader("1 2\n\n   \n3 4\n"))
	require.NoError(t, err)
	require.Len(t, edges, 2)
}

func TestParseKeepsSelfLoopsAndDuplicates(t *testing.T) {
	edges, err := edgelist.Parse(strings.NewReader("0 0\n1 2\n1 2\n"))
	require.NoError(t, err)
	require.Len(t, edges, 3)
}

func TestParseMalformedLine(t *testing.T) {
	_, err := edgelist.Parse(strings.NewReader("1 2\nnot-a-number 4\n"))
	require.Error(t, err)
	var perr *edgelist.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
}

func TestParseWrongFieldCount(t *testing.T) {
	_, err := edgelist.Parse(strings.NewReader("1 2 3\n"))
	require.Error(t, err)
}
