package mst

import (
	"sort"

	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/unionfind"
)

// Kruskal builds a minimum spanning tree (a forest when the graph is
// disconnected) by committing edges in ascending weight order unless they
// would close a cycle. The cycle check is a disjoint-set lookup over the
// endpoints, so the whole run is dominated by the sort.
//
// Weight-0 edges are impassable and never enter the tree. The sort is
// stable, so equal-weight edges are considered in insertion order.
func Kruskal(g *core.Graph, opts ...Option) (*Result, error) {
	_ = buildOptions(opts) // direction has no bearing on spanning trees

	uf := unionfind.NewID()
	for _, id := range g.NodeIDs() {
		uf.Insert(id)
	}

	candidates := make([]*core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.Weight == 0 {
			continue
		}
		candidates = append(candidates, e)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	res := &Result{}
	for _, e := range candidates {
		// Endpoints already connected: this edge would close a cycle.
		if uf.Same(e.Source, e.Target) {
			continue
		}
		uf.Union(e.Source, e.Target)
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
	}

	return res, nil
}
