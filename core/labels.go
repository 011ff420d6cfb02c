package core

import "math"

// Inf is the "unreached" distance sentinel. Algorithms never relax out of
// an Inf-distance node, so Inf+weight overflow cannot occur.
const Inf int64 = math.MaxInt64

// Label is the per-node scratch record of a single labeling-algorithm run:
// the current best distance from the source, the visited ("finalized")
// flag, and the backpointers to every tied-optimal predecessor.
//
// PointerNodes and PointerEdges are parallel: entry i of each describes
// one alternative optimal way to arrive at this node. A node with empty
// PointerNodes is a reconstruction terminus: the source itself, or an
// unreachable node.
type Label struct {
	Distance     int64
	Visited      bool
	PointerNodes []string
	PointerEdges []string
}

// SetPointer overwrites the backpointers with a single predecessor and
// the edge IDs connecting to it (several when tied minimum-weight parallel
// edges exist).
func (lb *Label) SetPointer(nodeID string, edgeIDs []string) {
	lb.PointerNodes = []string{nodeID}
	lb.PointerEdges = append([]string(nil), edgeIDs...)
}

// AddPointer appends an equal-cost predecessor. With dedup set, node and
// edge IDs already present are skipped (Bellman-Ford revisits the same
// edge every pass and must not grow the lists unboundedly).
func (lb *Label) AddPointer(nodeID string, edgeIDs []string, dedup bool) bool {
	changed := false
	if !dedup || !contains(lb.PointerNodes, nodeID) {
		lb.PointerNodes = append(lb.PointerNodes, nodeID)
		changed = true
	}
	for _, eid := range edgeIDs {
		if !dedup || !contains(lb.PointerEdges, eid) {
			lb.PointerEdges = append(lb.PointerEdges, eid)
			changed = true
		}
	}

	return changed
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}

// Labels is the side-table a single algorithm invocation allocates and
// owns: node ID → scratch label. The graph itself is never mutated, so
// repeated runs need no reinitialization ceremony and cannot corrupt each
// other as long as they run sequentially.
type Labels map[string]*Label

// NewLabels allocates a fresh side-table for a run rooted at sourceID:
// the source gets distance 0, every other node Inf, all unvisited.
// Returns ErrNodeNotFound when sourceID is absent.
func NewLabels(g *Graph, sourceID string) (Labels, error) {
	if !g.HasNode(sourceID) {
		return nil, ErrNodeNotFound
	}
	l := make(Labels, g.NodeCount())
	for _, n := range g.Nodes() {
		lb := &Label{Distance: Inf}
		if n.ID == sourceID {
			lb.Distance = 0
		}
		l[n.ID] = lb
	}

	return l, nil
}

// Distance returns the recorded distance of id, or Inf for unknown IDs.
func (l Labels) Distance(id string) int64 {
	if lb, ok := l[id]; ok {
		return lb.Distance
	}

	return Inf
}

// Reached reports whether id holds a finite distance.
func (l Labels) Reached(id string) bool {
	lb, ok := l[id]

	return ok && lb.Distance < Inf
}
