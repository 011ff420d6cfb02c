package traverse

import "github.com/keiro-dev/keiro/core"

// worklist discipline: where the next node is popped from.
type order int

const (
	lifo order = iota // depth-first
	fifo              // breadth-first
)

// DFS walks g depth-first from startID. Returns core.ErrNodeNotFound when
// startID, or a configured target, is absent from the graph.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return walk(g, startID, lifo, buildOptions(opts))
}

// BFS walks g breadth-first from startID. Returns core.ErrNodeNotFound
// when startID, or a configured target, is absent from the graph.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	return walk(g, startID, fifo, buildOptions(opts))
}

func walk(g *core.Graph, startID string, ord order, o Options) (*Result, error) {
	if !g.HasNode(startID) {
		return nil, core.ErrNodeNotFound
	}
	if o.Target != "" && !g.HasNode(o.Target) {
		return nil, core.ErrNodeNotFound
	}

	res := &Result{
		Start:   startID,
		Parent:  make(map[string]string),
		Visited: map[string]bool{startID: true},
	}
	todo := []string{startID}

	for len(todo) > 0 {
		var current string
		if ord == lifo {
			current = todo[len(todo)-1]
			todo = todo[:len(todo)-1]
		} else {
			current = todo[0]
			todo = todo[1:]
		}

		// The hop into current is recorded at expansion time, so Steps
		// reflects the order nodes were processed, not discovered.
		if current != startID {
			res.Steps = append(res.Steps, [2]string{res.Parent[current], current})
		}

		neighbors := g.NeighborIDs(current, o.Directed)

		// Target short-circuit: finish the moment the target appears in the
		// frontier, before any sibling gets discovered.
		if o.Target != "" && containsID(neighbors, o.Target) {
			res.Parent[o.Target] = current
			res.Visited[o.Target] = true
			res.Steps = append(res.Steps, [2]string{current, o.Target})
			res.Reached = true

			return res, nil
		}

		for _, n := range neighbors {
			if res.Visited[n] {
				continue
			}
			res.Parent[n] = current
			res.Visited[n] = true
			todo = append(todo, n)
		}
	}

	return res, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}

	return false
}
