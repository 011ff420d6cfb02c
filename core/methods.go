package core

// This file holds the read-only query surface of Graph: catalog accessors,
// adjacency, edge lookup between endpoints, and minimum-weight selection.
// Directedness is always a per-call flag.

// Nodes returns the nodes in insertion order. The returned slice is a
// copy; the pointed-to nodes are shared.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the edges in insertion order. The returned slice is a
// copy; the pointed-to edges are shared.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIdx[id]

	return ok
}

// Node returns the node with the given ID, or ErrNodeNotFound.
func (g *Graph) Node(id string) (*Node, error) {
	i, ok := g.nodeIdx[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.nodes[i], nil
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) Edge(id string) (*Edge, error) {
	i, ok := g.edgeIdx[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[i], nil
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// NeighborIDs returns the deduplicated IDs of all nodes reachable from id
// by one traversable edge (weight != 0 and, when capacity is tracked,
// current != 0). In undirected mode an edge contributes its source when id
// is its target. Order follows edge insertion order, first occurrence wins.
func (g *Graph) NeighborIDs(id string, directed bool) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(nid string) {
		if _, dup := seen[nid]; dup {
			return
		}
		seen[nid] = struct{}{}
		out = append(out, nid)
	}

	for _, e := range g.edges {
		// Zero weight or exhausted capacity means "no edge here".
		if !e.Traversable() {
			continue
		}
		if e.Source == id {
			add(e.Target)
		}
		if !directed && e.Target == id {
			add(e.Source)
		}
	}

	return out
}

// EdgesBetween returns every edge connecting a and b, in insertion order.
// Undirected mode matches both orientations. Zero-weight edges are
// excluded; tracked capacity is not consulted here (the residual mask
// applies to reachability, not to edge identity).
func (g *Graph) EdgesBetween(a, b string, directed bool) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Weight == 0 {
			continue
		}
		if e.Source == a && e.Target == b {
			out = append(out, e)
		} else if !directed && e.Source == b && e.Target == a {
			out = append(out, e)
		}
	}

	return out
}

// ConnectedEdges returns every edge incident to id: outgoing edges, plus
// incoming ones in undirected mode. No traversability filtering is applied;
// callers that care about weights filter themselves (Prim's frontier scan
// wants all incident edges).
func (g *Graph) ConnectedEdges(id string, directed bool) []*Edge {
	var out []*Edge
	for _, e := range g.edges {
		if e.Source == id {
			out = append(out, e)
		} else if !directed && e.Target == id {
			out = append(out, e)
		}
	}

	return out
}

// MinimumWeightEdges returns the subset of edges sharing the smallest
// weight, preserving input order. All ties are included; this is what
// produces equal-cost multipaths downstream.
func MinimumWeightEdges(edges []*Edge) []*Edge {
	var (
		min   int64 = Inf
		picks []*Edge
	)
	for _, e := range edges {
		switch {
		case e.Weight == min:
			picks = append(picks, e)
		case e.Weight < min:
			min = e.Weight
			picks = []*Edge{e}
		}
	}

	return picks
}

// EdgeIDs extracts the IDs of the given edges, preserving order.
func EdgeIDs(edges []*Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}

	return ids
}
