package shortest

import "github.com/keiro-dev/keiro/core"

// greedy is the shared Dijkstra/A* runner. It finalizes one node per
// iteration, the unvisited node with the smallest label, and relaxes its
// unvisited neighbors. targetID stops the run as soon as that node is
// finalized; empty means exhaust the graph. h folds an estimate into each
// label; nil adds nothing.
func greedy(g *core.Graph, sourceID, targetID string, o Options) (core.Labels, error) {
	labels, err := core.NewLabels(g, sourceID)
	if err != nil {
		return nil, err
	}
	if targetID != "" && !g.HasNode(targetID) {
		return nil, core.ErrNodeNotFound
	}

	h := func(id string) int64 {
		if o.Heuristic == nil {
			return 0
		}

		return o.Heuristic(g, id, targetID)
	}

	// Step 1: the source joins the visited set, and each of its neighbors
	// gets an initial label through the cheapest connecting edge(s).
	labels[sourceID].Visited = true
	for _, vid := range g.NeighborIDs(sourceID, o.Directed) {
		edges := core.MinimumWeightEdges(g.EdgesBetween(sourceID, vid, o.Directed))
		lb := labels[vid]
		lb.Distance = edges[0].Weight + h(vid)
		lb.SetPointer(sourceID, core.EdgeIDs(edges))
	}

	// Step 2: repeatedly finalize the smallest unvisited label and relax
	// outward from it, until every node is finalized (or the target is).
	for {
		vid := minUnvisited(g, labels)
		if vid == "" {
			break
		}
		lv := labels[vid]
		lv.Visited = true

		if targetID != "" && vid == targetID {
			break
		}
		// An Inf label means the remaining nodes are unreachable; they
		// still get finalized one by one, but offer nothing to relax.
		if lv.Distance == core.Inf {
			continue
		}

		for _, uid := range g.NeighborIDs(vid, o.Directed) {
			lu := labels[uid]
			if lu.Visited {
				continue
			}

			edges := core.MinimumWeightEdges(g.EdgesBetween(vid, uid, o.Directed))
			alt := lv.Distance + edges[0].Weight + h(uid)

			switch {
			case lu.Distance < alt:
				// The recorded route is strictly better; keep it.
			case lu.Distance == alt:
				// Equally good: remember this predecessor too.
				lu.AddPointer(vid, core.EdgeIDs(edges), false)
			default:
				lu.Distance = alt
				lu.SetPointer(vid, core.EdgeIDs(edges))
			}
		}
	}

	return labels, nil
}

// minUnvisited returns the unvisited node with the smallest label, or ""
// when every node is visited. Ties go to the node inserted first.
func minUnvisited(g *core.Graph, labels core.Labels) string {
	var (
		best     string
		bestDist int64
		found    bool
	)
	for _, id := range g.NodeIDs() {
		lb := labels[id]
		if lb.Visited {
			continue
		}
		if !found || lb.Distance < bestDist {
			best, bestDist, found = id, lb.Distance, true
		}
	}

	return best
}
