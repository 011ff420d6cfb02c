package flow

import (
	"github.com/keiro-dev/keiro/core"
	"github.com/keiro-dev/keiro/traverse"
)

// MaxFlow computes the maximum flow from sourceID to targetID. The input
// graph is treated as directed (capacities apply to each edge's stated
// orientation) and is left unmodified; all bookkeeping happens on a
// residual network returned in the Result.
//
// Returns core.ErrNodeNotFound when either endpoint is absent,
// ErrParallelEdges when two edges share an ordered endpoint pair, and
// ErrIterationLimit when augmentation exceeds the configured cap.
func MaxFlow(g *core.Graph, sourceID, targetID string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)

	if !g.HasNode(sourceID) || !g.HasNode(targetID) {
		return nil, core.ErrNodeNotFound
	}

	residual, err := BuildResidual(g)
	if err != nil {
		return nil, err
	}

	res := &Result{Network: residual}
	for {
		walk, err := traverse.DFS(residual, sourceID,
			traverse.WithDirected(), traverse.WithTarget(targetID))
		if err != nil {
			return nil, err
		}
		// Saturated edges are masked out of the walk, so an unreached
		// target means no augmenting path remains: the flow is maximum.
		if !walk.Reached {
			break
		}

		res.Iterations++
		if res.Iterations > o.MaxIterations {
			return nil, ErrIterationLimit
		}

		path, _ := walk.PathTo(targetID)
		if err := augment(residual, path); err != nil {
			return nil, err
		}
	}

	for _, e := range residual.Edges() {
		if !e.Residual && e.Source == sourceID {
			res.Value += e.Flow
		}
	}

	return res, nil
}

// augment pushes the path's bottleneck capacity along every hop, keeping
// each forward/reverse pair consistent: a forward hop raises that edge's
// flow, a reverse hop cancels flow on its forward partner. Either way the
// reverse side's capacity mirrors the forward side's flow.
func augment(residual *core.Graph, path []string) error {
	hops := make([]*core.Edge, len(path)-1)
	bottleneck := core.Inf
	for i := range hops {
		e := edgeFromTo(residual, path[i], path[i+1])
		if e == nil || e.Current <= 0 {
			return ErrNoCapacity
		}
		hops[i] = e
		if e.Current < bottleneck {
			bottleneck = e.Current
		}
	}

	for _, e := range hops {
		pair, err := residual.Edge(e.Pair)
		if err != nil {
			return err
		}
		if e.Residual {
			pair.Flow -= bottleneck
			pair.Current = pair.Weight - pair.Flow
			e.Current = pair.Flow
		} else {
			e.Flow += bottleneck
			e.Current = e.Weight - e.Flow
			pair.Current = e.Flow
		}
	}

	return nil
}

// edgeFromTo resolves a path hop to a residual edge. Anti-parallel input
// edges make a forward edge and an unrelated reverse edge share the same
// ordered pair, so among the candidates the first one with remaining
// capacity wins; with none left, the first match is returned and the
// caller reports the capacity violation.
func edgeFromTo(g *core.Graph, from, to string) *core.Edge {
	var first *core.Edge
	for _, e := range g.Edges() {
		if e.Source != from || e.Target != to {
			continue
		}
		if e.Current > 0 {
			return e
		}
		if first == nil {
			first = e
		}
	}

	return first
}
