package traverse

import "github.com/keiro-dev/keiro/core"

// DetectCycleFrom probes for a cycle in the component reachable from
// startID, walking depth-first. While scanning the neighbors of a node the
// one equal to its own discovery parent is skipped (that edge is how we
// got here, not a cycle); any other already-visited neighbor proves a
// cycle and aborts the probe immediately.
//
// Returns core.ErrNodeNotFound when startID is absent.
func DetectCycleFrom(g *core.Graph, startID string, opts ...Option) (bool, error) {
	o := buildOptions(opts)
	if !g.HasNode(startID) {
		return false, core.ErrNodeNotFound
	}

	parent := make(map[string]string)
	visited := map[string]bool{startID: true}
	todo := []string{startID}

	for len(todo) > 0 {
		current := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		for _, n := range g.NeighborIDs(current, o.Directed) {
			if n == parent[current] {
				continue
			}
			if visited[n] {
				return true, nil
			}
			parent[n] = current
			visited[n] = true
			todo = append(todo, n)
		}
	}

	return false, nil
}

// DetectCycle reports whether g contains any cycle. A single-source probe
// only sees its own component, so the probe is rerun from every node until
// one finds a cycle or all are exhausted; that covers cycles hiding in
// components unreachable from any particular start.
func DetectCycle(g *core.Graph, opts ...Option) (bool, error) {
	for _, id := range g.NodeIDs() {
		cyclic, err := DetectCycleFrom(g, id, opts...)
		if err != nil {
			return false, err
		}
		if cyclic {
			return true, nil
		}
	}

	return false, nil
}
