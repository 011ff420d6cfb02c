package mst

import "github.com/keiro-dev/keiro/core"

// Prim grows a minimum spanning tree from sourceID. Each round scans the
// frontier (edges with exactly one endpoint in the tree) and commits the
// first minimum-weight one, pulling its outside endpoint in. The node's
// label records the cumulative cost of its tree path from the root and a
// single backpointer, so Result.Labels reconstructs tree paths the same
// way the shortest-path results do.
//
// An empty frontier while nodes remain unvisited means those nodes are in
// another component; the run ends quietly with a partial tree.
//
// Returns core.ErrNodeNotFound when sourceID is absent.
func Prim(g *core.Graph, sourceID string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	labels, err := core.NewLabels(g, sourceID)
	if err != nil {
		return nil, err
	}
	labels[sourceID].Visited = true

	res := &Result{Labels: labels}

	for hasUnvisited(g, labels) {
		edge := minFrontierEdge(g, labels, o.Directed)
		if edge == nil {
			break
		}

		res.Edges = append(res.Edges, edge)
		res.TotalWeight += edge.Weight

		if lt := labels[edge.Target]; !lt.Visited {
			lt.Visited = true
			lt.Distance = labels[edge.Source].Distance + edge.Weight
			lt.SetPointer(edge.Source, []string{edge.ID})
		} else if ls := labels[edge.Source]; !o.Directed && !ls.Visited {
			ls.Visited = true
			ls.Distance = labels[edge.Target].Distance + edge.Weight
			ls.SetPointer(edge.Target, []string{edge.ID})
		}
	}

	return res, nil
}

// minFrontierEdge returns the first minimum-weight edge with exactly one
// visited endpoint, or nil when the frontier is empty. Visited nodes are
// scanned in graph insertion order, and each node's incident edges in edge
// insertion order, which fixes the tie-break.
func minFrontierEdge(g *core.Graph, labels core.Labels, directed bool) *core.Edge {
	var frontier []*core.Edge
	for _, id := range g.NodeIDs() {
		if !labels[id].Visited {
			continue
		}
		for _, e := range g.ConnectedEdges(id, directed) {
			if e.Weight == 0 {
				continue
			}
			sv, tv := labels[e.Source].Visited, labels[e.Target].Visited
			if sv && !tv {
				frontier = append(frontier, e)
			} else if !directed && tv && !sv {
				frontier = append(frontier, e)
			}
		}
	}

	picks := core.MinimumWeightEdges(frontier)
	if len(picks) == 0 {
		return nil
	}

	return picks[0]
}

func hasUnvisited(g *core.Graph, labels core.Labels) bool {
	for _, id := range g.NodeIDs() {
		if !labels[id].Visited {
			return true
		}
	}

	return false
}
