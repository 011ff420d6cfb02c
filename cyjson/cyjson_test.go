package cyjson_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/cyjson"
)

const elementsJSON = `[
  { "group": "nodes", "data": { "id": "s" }, "position": { "x": 0, "y": 0 } },
  { "group": "nodes", "data": { "id": "a" }, "position": { "x": 30, "y": 40 } },
  { "data": { "id": "b" } },
  { "data": { "id": "s_a", "source": "s", "target": "a", "weight": 5 } },
  { "data": { "id": "a_b", "source": "a", "target": "b" } }
]`

func TestUnmarshal(t *testing.T) {
	g, err := cyjson.Unmarshal([]byte(elementsJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"s", "a", "b"}, g.NodeIDs())
	assert.Equal(t, 2, g.EdgeCount())

	// Positions survive the round trip into the graph.
	n, err := g.Node("a")
	require.NoError(t, err)
	require.NotNil(t, n.Position)
	assert.Equal(t, 30.0, n.Position.X)

	// Untagged elements are classified structurally, and a missing
	// weight defaults to 1.
	e, err := g.Edge("a_b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight)

	e, err = g.Edge("s_a")
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Weight)
}

func TestUnmarshal_EdgeBeforeNodes(t *testing.T) {
	// Element order must not matter: edges may precede their endpoints.
	g, err := cyjson.Unmarshal([]byte(`[
	  { "data": { "id": "x_y", "source": "x", "target": "y" } },
	  { "data": { "id": "x" } },
	  { "data": { "id": "y" } }
	]`))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestUnmarshal_DanglingEdge(t *testing.T) {
	_, err := cyjson.Unmarshal([]byte(`[
	  { "data": { "id": "x" } },
	  { "data": { "id": "broken", "source": "x", "target": "ghost" } }
	]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidEdge))
	assert.Contains(t, err.Error(), "broken")
}

func TestUnmarshal_MissingIDs(t *testing.T) {
	raw := []byte(`[
	  { "data": { "id": "a" } },
	  { "data": { } },
	  { "data": { "id": "b" } }
	]`)

	// Dropped by default.
	g, err := cyjson.Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())

	// Kept with a generated ID when asked.
	g, err = cyjson.Unmarshal(raw, cyjson.WithGeneratedIDs())
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
}

func TestUnmarshal_ExplicitZeroWeight(t *testing.T) {
	g, err := cyjson.Unmarshal([]byte(`[
	  { "data": { "id": "a" } },
	  { "data": { "id": "b" } },
	  { "data": { "id": "wall", "source": "a", "target": "b", "weight": 0 } }
	]`))
	require.NoError(t, err)

	// Weight 0 must stay 0 (impassable), not fall back to the default.
	e, err := g.Edge("wall")
	require.NoError(t, err)
	assert.Zero(t, e.Weight)
	assert.Empty(t, g.NeighborIDs("a", false))
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- group: nodes
  data:
    id: a
- group: nodes
  data:
    id: b
- group: edges
  data:
    id: a_b
    source: a
    target: b
    weight: 3
`), 0o644))

	g, err := cyjson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.NodeIDs())

	e, err := g.Edge("a_b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.Weight)
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := cyjson.Load(path)
	assert.True(t, errors.Is(err, cyjson.ErrUnknownFormat))
}

func TestMarshal_RoundTrip(t *testing.T) {
	g, err := cyjson.Unmarshal([]byte(elementsJSON))
	require.NoError(t, err)

	raw, err := cyjson.Marshal(g)
	require.NoError(t, err)

	back, err := cyjson.Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, g.NodeIDs(), back.NodeIDs())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
}

func TestFromAdjacencyMatrix(t *testing.T) {
	g, err := cyjson.FromAdjacencyMatrix([][]int64{
		{0, 5, 0},
		{5, 0, 2},
		{0, 2, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, g.NodeIDs())
	// Upper triangle only: one edge per pair.
	assert.Equal(t, 2, g.EdgeCount())

	e, err := g.Edge("1_2")
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Weight)
	e, err = g.Edge("2_3")
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.Weight)
}

func TestFromAdjacencyMatrix_Ragged(t *testing.T) {
	_, err := cyjson.FromAdjacencyMatrix([][]int64{
		{0, 1},
		{1},
	})
	assert.Error(t, err)
}
