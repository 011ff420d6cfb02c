package shortest

import "github.com/keiro-dev/keiro/core"

// AStar runs a goal-directed shortest-path search from sourceID and stops
// as soon as targetID is finalized, leaving nodes beyond it unlabeled.
//
// The heuristic (see WithHeuristic) is accumulated into the stored labels:
// with a non-zero estimator, Distance values are search-ordering keys
// rather than exact graph distances, and the reconstructed paths are only
// as good as the estimator is honest. With no heuristic the result matches
// Dijkstra exactly for every node finalized before the stop.
//
// Returns core.ErrNodeNotFound when sourceID or targetID is absent.
func AStar(g *core.Graph, sourceID, targetID string, opts ...Option) (*Result, error) {
	labels, err := greedy(g, sourceID, targetID, buildOptions(opts))
	if err != nil {
		return nil, err
	}

	return &Result{Source: sourceID, Labels: labels}, nil
}
