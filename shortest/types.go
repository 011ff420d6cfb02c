package shortest

import (
	"errors"
	"math"

	"github.com/keiro-dev/keiro/core"
)

// ErrNegativeCycle is returned by BellmanFord when relaxation still
// improves a distance after |V|−1 passes, which is only possible when a
// reachable cycle has negative total weight.
var ErrNegativeCycle = errors.New("shortest: negative cycle detected")

// Heuristic estimates the remaining cost from currentID to targetID.
// Estimates are folded into the stored labels, so a non-zero heuristic
// trades exact distances for a more goal-directed search.
type Heuristic func(g *core.Graph, currentID, targetID string) int64

// ScaledEuclidean estimates remaining cost as the straight-line distance
// between the two nodes' positions, scaled down by 10 and truncated to an
// integer. A node without a position is treated as sitting at the origin;
// unknown IDs estimate 0.
func ScaledEuclidean(g *core.Graph, currentID, targetID string) int64 {
	current, err := g.Node(currentID)
	if err != nil {
		return 0
	}
	target, err := g.Node(targetID)
	if err != nil {
		return 0
	}

	cx, cy := coords(current)
	tx, ty := coords(target)

	return int64(math.Hypot(cx-tx, cy-ty) / 10)
}

func coords(n *core.Node) (float64, float64) {
	if n.Position == nil {
		return 0, 0
	}

	return n.Position.X, n.Position.Y
}

// Options configures a shortest-path run.
type Options struct {
	// Directed restricts edges to source→target orientation.
	Directed bool

	// Heuristic is consulted by AStar only. Nil means no estimate.
	Heuristic Heuristic
}

// Option mutates Options.
type Option func(*Options)

// WithDirected makes the run honor edge direction.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithHeuristic sets the remaining-cost estimator used by AStar.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result carries the labels produced by one shortest-path run.
type Result struct {
	// Source is the node the run was rooted at.
	Source string

	// Labels is the per-node outcome: distance, visited flag and the
	// backpointers to every tied-optimal predecessor.
	Labels core.Labels
}

// Distance returns the computed distance from the source to id, or
// core.Inf when id was never reached (or is unknown).
func (r *Result) Distance(id string) int64 { return r.Labels.Distance(id) }

// Reached reports whether id holds a finite distance.
func (r *Result) Reached(id string) bool { return r.Labels.Reached(id) }

// PathsTo reconstructs every tied-optimal source→id path.
func (r *Result) PathsTo(id string) ([][]string, error) { return r.Labels.Paths(id) }
