package shortest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/shortest"
)

// Without a heuristic, A* is Dijkstra with an early stop: the target's
// distance and paths must match exactly.
func TestAStar_NoHeuristicMatchesDijkstra(t *testing.T) {
	g := fig61(t)

	astar, err := shortest.AStar(g, "s", "t")
	require.NoError(t, err)
	dijkstra, err := shortest.Dijkstra(g, "s")
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Distance("t"), astar.Distance("t"))

	wantPaths, err := dijkstra.PathsTo("t")
	require.NoError(t, err)
	gotPaths, err := astar.PathsTo("t")
	require.NoError(t, err)
	assert.Equal(t, wantPaths, gotPaths)
}

// Estimates accumulate into the labels: on a straight line a→b→c the
// target's label carries the intermediate node's estimate on top of the
// true cost.
func TestAStar_HeuristicAccumulates(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a", core.WithPosition(0, 0)))
	require.NoError(t, g.AddNode("b", core.WithPosition(100, 0)))
	require.NoError(t, g.AddNode("c", core.WithPosition(200, 0)))
	require.NoError(t, g.AddEdge("a_b", "a", "b", 10))
	require.NoError(t, g.AddEdge("b_c", "b", "c", 10))

	res, err := shortest.AStar(g, "a", "c", shortest.WithHeuristic(shortest.ScaledEuclidean))
	require.NoError(t, err)

	// True cost 20, plus b's estimate of 10 folded in along the way.
	assert.Equal(t, int64(30), res.Distance("c"))

	paths, err := res.PathsTo("c")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}}, paths)
}

// The early stop leaves nodes past the target unexplored.
func TestAStar_EarlyStop(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("a_b", "a", "b", 1))
	require.NoError(t, g.AddEdge("b_c", "b", "c", 1))

	res, err := shortest.AStar(g, "a", "b")
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Distance("b"))
	assert.False(t, res.Reached("c"), "c lies past the target and must stay unlabeled")
}

func TestAStar_MissingEndpoints(t *testing.T) {
	g := fig61(t)

	_, err := shortest.AStar(g, "missing", "t")
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))

	_, err = shortest.AStar(g, "s", "missing")
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
}

func TestScaledEuclidean(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a", core.WithPosition(0, 0)))
	require.NoError(t, g.AddNode("b", core.WithPosition(30, 40)))
	require.NoError(t, g.AddNode("nowhere"))

	assert.Equal(t, int64(5), shortest.ScaledEuclidean(g, "a", "b"))
	assert.Equal(t, int64(0), shortest.ScaledEuclidean(g, "a", "a"))
	// A node without a position sits at the origin.
	assert.Equal(t, int64(5), shortest.ScaledEuclidean(g, "nowhere", "b"))
	// Unknown IDs estimate zero.
	assert.Equal(t, int64(0), shortest.ScaledEuclidean(g, "ghost", "b"))
}
