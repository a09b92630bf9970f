package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/dfs"
)

// graph is an adjacency list keyed by state.
type graph map[string][]dfs.Edge[string]

func (g graph) next(s string) []dfs.Edge[string] { return g[s] }

type edge struct {
	u, v string
	w    int
}

// undirected adds both directions of every edge.
func undirected(edges ...edge) graph {
	g := graph{}
	for _, e := range edges {
		g[e.u] = append(g[e.u], dfs.Edge[string]{To: e.v, Weight: e.w})
		g[e.v] = append(g[e.v], dfs.Edge[string]{To: e.u, Weight: e.w})
	}
	return g
}

func TestLongest_InvalidInput(t *testing.T) {
	_, err := dfs.Longest("A", "B", nil)
	assert.ErrorIs(t, err, dfs.ErrNilSuccessor)

	_, err = dfs.Longest("A", "B", graph{}.next, dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestLongest_StartIsGoal(t *testing.T) {
	got, err := dfs.Longest("A", "A", graph{}.next)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestLongest_Unreachable(t *testing.T) {
	g := graph{"A": {{To: "B", Weight: 1}}}
	_, err := dfs.Longest("A", "C", g.next)
	assert.ErrorIs(t, err, dfs.ErrNoPath)
}

func TestLongest_PrefersDetour(t *testing.T) {
	// A-B-D is direct; A-C-E-B-D takes the long way round without
	// revisiting anything.
	g := undirected(
		edge{"A", "B", 1},
		edge{"B", "D", 1},
		edge{"A", "C", 2},
		edge{"C", "E", 3},
		edge{"E", "B", 4},
	)
	got, err := dfs.Longest("A", "D", g.next)
	require.NoError(t, err)
	assert.Equal(t, 2+3+4+1, got)
}

func TestLongest_DirectedEdgesRespected(t *testing.T) {
	g := graph{
		"S": {{To: "X", Weight: 1}, {To: "Y", Weight: 10}},
		"X": {{To: "T", Weight: 1}},
		"Y": {{To: "X", Weight: 1}},
		"T": {{To: "Y", Weight: 100}},
	}
	got, err := dfs.Longest("S", "T", g.next)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestLongest_MaxDepth(t *testing.T) {
	g := undirected(
		edge{"A", "B", 1},
		edge{"B", "C", 1},
		edge{"C", "D", 1},
		edge{"A", "D", 1},
	)
	got, err := dfs.Longest("A", "D", g.next, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = dfs.Longest("A", "D", g.next)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestLongest_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := undirected(edge{"A", "B", 1})
	_, err := dfs.Longest("A", "B", g.next, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
