package flow

import "github.com/keiro-dev/keiro/core"

// BuildResidual materializes the residual network for g. Every node is
// carried over; every edge (u,v,w) becomes a forward edge with capacity w
// and a reverse partner (v,u) with capacity 0, each naming the other as
// its pair. The reverse edge's ID is the forward ID with a reserved
// prefix.
//
// Returns ErrParallelEdges when two input edges share an ordered
// (source, target) pair; augmentation resolves hops to edges by endpoint
// pair, so duplicates must be pre-merged by the caller.
func BuildResidual(g *core.Graph) (*core.Graph, error) {
	residual := core.NewGraph()
	for _, n := range g.Nodes() {
		opts := []core.NodeOption{}
		if n.Position != nil {
			opts = append(opts, core.WithPosition(n.Position.X, n.Position.Y))
		}
		if err := residual.AddNode(n.ID, opts...); err != nil {
			return nil, err
		}
	}

	seen := make(map[[2]string]bool)
	for _, e := range g.Edges() {
		pair := [2]string{e.Source, e.Target}
		if seen[pair] {
			return nil, ErrParallelEdges
		}
		seen[pair] = true

		reverseID := residualPrefix + e.ID

		err := residual.AddEdge(e.ID, e.Source, e.Target, e.Weight,
			core.WithCurrent(e.Weight), core.WithPair(reverseID))
		if err != nil {
			return nil, err
		}

		// The reverse edge opens up only as forward flow accumulates.
		err = residual.AddEdge(reverseID, e.Target, e.Source, 1,
			core.WithCurrent(0), core.WithResidual(), core.WithPair(e.ID))
		if err != nil {
			return nil, err
		}
	}

	return residual, nil
}
