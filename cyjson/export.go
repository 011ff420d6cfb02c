package cyjson

import (
	"encoding/json"
	"fmt"

	"github.com/keiro-dev/keiro/core"
)

// Elements flattens a graph back into an element list: nodes first, then
// edges, each in insertion order, with explicit group tags.
func Elements(g *core.Graph) []Element {
	out := make([]Element, 0, g.NodeCount()+g.EdgeCount())
	for _, n := range g.Nodes() {
		ele := Element{Group: groupNodes, Data: ElementData{ID: n.ID}}
		if n.Position != nil {
			ele.Position = &Point{X: n.Position.X, Y: n.Position.Y}
		}
		out = append(out, ele)
	}
	for _, e := range g.Edges() {
		w := e.Weight
		out = append(out, Element{
			Group: groupEdges,
			Data: ElementData{
				ID:     e.ID,
				Source: e.Source,
				Target: e.Target,
				Weight: &w,
			},
		})
	}

	return out
}

// Marshal renders a graph as an indented JSON element list.
func Marshal(g *core.Graph) ([]byte, error) {
	raw, err := json.MarshalIndent(Elements(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cyjson: encode elements: %w", err)
	}

	return raw, nil
}

// FromAdjacencyMatrix builds an undirected graph from a square weight
// matrix. Node IDs are 1-based row numbers; only the upper triangle is
// read, with zero entries meaning "no edge". Edge IDs take the form
// "<i>_<j>".
func FromAdjacencyMatrix(matrix [][]int64) (*core.Graph, error) {
	g := core.NewGraph()
	for i := range matrix {
		if err := g.AddNode(fmt.Sprintf("%d", i+1)); err != nil {
			return nil, fmt.Errorf("cyjson: matrix node %d: %w", i+1, err)
		}
	}
	for i, row := range matrix {
		if len(row) != len(matrix) {
			return nil, fmt.Errorf("cyjson: matrix row %d has %d columns, want %d", i+1, len(row), len(matrix))
		}
		for j := i + 1; j < len(row); j++ {
			if row[j] == 0 {
				continue
			}
			id := fmt.Sprintf("%d_%d", i+1, j+1)
			if err := g.AddEdge(id, fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", j+1), row[j]); err != nil {
				return nil, fmt.Errorf("cyjson: matrix edge %s: %w", id, err)
			}
		}
	}

	return g, nil
}
