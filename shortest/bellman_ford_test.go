package shortest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/shortest"
)

// Bellman-Ford and Dijkstra must agree on every node of a non-negative
// graph, tied paths included.
func TestBellmanFord_MatchesDijkstra(t *testing.T) {
	g := fig61(t)

	bf, err := shortest.BellmanFord(g, "s")
	require.NoError(t, err)
	dijkstra, err := shortest.Dijkstra(g, "s")
	require.NoError(t, err)

	for _, id := range g.NodeIDs() {
		assert.Equal(t, dijkstra.Distance(id), bf.Distance(id), "distance(%s)", id)
	}

	paths, err := bf.PathsTo("t")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"s", "B", "D", "t"}}, paths)

	paths, err = bf.PathsTo("C")
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]string{
		{"s", "A", "C"},
		{"s", "B", "D", "F", "C"},
	}, paths)
}

func TestBellmanFord_NegativeWeights(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("a_b", "a", "b", 4))
	require.NoError(t, g.AddEdge("a_c", "a", "c", 2))
	require.NoError(t, g.AddEdge("c_b", "c", "b", -3))
	require.NoError(t, g.AddEdge("b_d", "b", "d", 1))

	res, err := shortest.BellmanFord(g, "a", shortest.WithDirected())
	require.NoError(t, err)

	// a→c→b costs -1, undercutting the direct a→b.
	assert.Equal(t, int64(-1), res.Distance("b"))
	assert.Equal(t, int64(0), res.Distance("d"))

	paths, err := res.PathsTo("d")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "c", "b", "d"}}, paths)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("a_b", "a", "b", 1))
	require.NoError(t, g.AddEdge("b_c", "b", "c", -2))
	require.NoError(t, g.AddEdge("c_a", "c", "a", -1))

	_, err := shortest.BellmanFord(g, "a", shortest.WithDirected())
	assert.True(t, errors.Is(err, shortest.ErrNegativeCycle), "got %v", err)
}

// In undirected mode a negative edge is a negative cycle on its own: the
// relaxation can bounce across it forever.
func TestBellmanFord_UndirectedNegativeEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a"))
	require.NoError(t, g.AddNode("b"))
	require.NoError(t, g.AddEdge("a_b", "a", "b", -1))

	_, err := shortest.BellmanFord(g, "a")
	assert.True(t, errors.Is(err, shortest.ErrNegativeCycle), "got %v", err)
}

func TestBellmanFord_MissingSource(t *testing.T) {
	g := fig61(t)
	_, err := shortest.BellmanFord(g, "missing")
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
}

func TestBellmanFord_ImpassableEdge(t *testing.T) {
	g := fig61(t)
	require.NoError(t, g.AddEdge("s_t", "s", "t", 0))

	res, err := shortest.BellmanFord(g, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(14), res.Distance("t"))
}
