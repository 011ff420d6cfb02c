package shortest

import "github.com/keiro-dev/keiro/core"

// BellmanFord computes shortest distances from sourceID by sweeping every
// edge up to |V|−1 times. Unlike Dijkstra it tolerates negative weights;
// a pass that changes nothing ends the run early.
//
// If a distance would still shrink after |V|−1 passes, a reachable
// negative-weight cycle exists and ErrNegativeCycle is returned; note
// that in undirected mode any single negative edge forms such a cycle by
// itself. Returns core.ErrNodeNotFound when sourceID is absent.
func BellmanFord(g *core.Graph, sourceID string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	labels, err := core.NewLabels(g, sourceID)
	if err != nil {
		return nil, err
	}

	converged := false
	for i := 0; i < g.NodeCount()-1; i++ {
		if !relaxAllEdges(g, labels, o.Directed) {
			converged = true

			break
		}
	}
	if !converged && wouldRelax(g, labels, o.Directed) {
		return nil, ErrNegativeCycle
	}

	return &Result{Source: sourceID, Labels: labels}, nil
}

// relaxAllEdges performs one full pass over the edge list, relaxing each
// traversable edge (both directions in undirected mode). Reports whether
// any label actually changed; equal-cost re-confirmations that add no new
// pointer do not count, so convergence is detected as soon as the labels
// are stable.
func relaxAllEdges(g *core.Graph, labels core.Labels, directed bool) bool {
	changed := false
	for _, e := range g.Edges() {
		if !e.Traversable() {
			continue
		}
		if relaxEdge(labels, e.Source, e.Target, e.ID, e.Weight) {
			changed = true
		}
		if !directed && relaxEdge(labels, e.Target, e.Source, e.ID, e.Weight) {
			changed = true
		}
	}

	return changed
}

func relaxEdge(labels core.Labels, fromID, toID, edgeID string, weight int64) bool {
	from, to := labels[fromID], labels[toID]
	if from.Distance == core.Inf {
		return false
	}

	alt := from.Distance + weight
	switch {
	case alt < to.Distance:
		to.Distance = alt
		to.SetPointer(fromID, []string{edgeID})

		return true
	case alt == to.Distance:
		// Same cost through a different predecessor; pointer lists are
		// deduplicated because every pass revisits every edge.
		return to.AddPointer(fromID, []string{edgeID}, true)
	}

	return false
}

// wouldRelax reports whether any traversable edge still offers a strictly
// shorter distance. Pointer-only additions are ignored here: those settle
// within |V|−1 passes, only a negative cycle keeps distances falling.
func wouldRelax(g *core.Graph, labels core.Labels, directed bool) bool {
	improves := func(fromID, toID string, weight int64) bool {
		from := labels[fromID]

		return from.Distance != core.Inf && from.Distance+weight < labels[toID].Distance
	}

	for _, e := range g.Edges() {
		if !e.Traversable() {
			continue
		}
		if improves(e.Source, e.Target, e.Weight) {
			return true
		}
		if !directed && improves(e.Target, e.Source, e.Weight) {
			return true
		}
	}

	return false
}
