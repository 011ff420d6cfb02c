package shortest

import "github.com/keiro-dev/keiro/core"

// Dijkstra computes shortest distances from sourceID to every reachable
// node, labeling the whole graph. Weights must be non-negative; use
// BellmanFord when they are not.
//
// Returns core.ErrNodeNotFound when sourceID is absent.
func Dijkstra(g *core.Graph, sourceID string, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	o.Heuristic = nil

	labels, err := greedy(g, sourceID, "", o)
	if err != nil {
		return nil, err
	}

	return &Result{Source: sourceID, Labels: labels}, nil
}
