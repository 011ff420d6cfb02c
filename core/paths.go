package core

// Path reconstruction: walk backpointers from a target node until nodes
// with no predecessors are hit, emitting one source→target sequence per
// distinct chain of tied-optimal predecessors.
//
// The walk is iterative with explicit frames rather than recursive:
// graphs with many equal-cost paths would otherwise pay recursion depth
// and per-call copying for nothing. Sibling branches still never share
// path storage; each frame carries its own copy of the partial path.

// pathFrame is one pending step of the backward walk: the node to expand
// and the (target-first) path accumulated so far.
type pathFrame struct {
	id   string
	path []string
}

// Paths returns every tied-optimal source→target path recorded in the
// side-table, walking PointerNodes backwards from targetID. A node with
// no predecessors terminates its branch; the accumulated walk is reversed
// into source→target order and emitted.
//
// Branches are explored in predecessor-list order, so the output order is
// deterministic. The number of paths is exponential in the number of ties
// in the worst case; callers needing a single path should not enumerate
// all of them on heavily tied graphs.
//
// Returns ErrNodeNotFound when targetID (or any recorded predecessor) has
// no label in the table.
func (l Labels) Paths(targetID string) ([][]string, error) {
	if _, ok := l[targetID]; !ok {
		return nil, ErrNodeNotFound
	}

	var all [][]string
	stack := []pathFrame{{id: targetID}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lb, ok := l[f.id]
		if !ok {
			return nil, ErrNodeNotFound
		}

		// Extend a private copy of the partial path with this node.
		path := make([]string, len(f.path), len(f.path)+1)
		copy(path, f.path)
		path = append(path, f.id)

		if len(lb.PointerNodes) == 0 {
			// Terminus: reverse target-first accumulation into source→target.
			all = append(all, reversed(path))

			continue
		}

		// Push predecessors in reverse so the first one is expanded first,
		// matching the natural depth-first order of the pointer lists.
		for i := len(lb.PointerNodes) - 1; i >= 0; i-- {
			stack = append(stack, pathFrame{id: lb.PointerNodes[i], path: path})
		}
	}

	return all, nil
}

func reversed(path []string) []string {
	out := make([]string, len(path))
	for i, id := range path {
		out[len(path)-1-i] = id
	}

	return out
}
