package mst

import (
	"errors"

	"github.com/keiro-dev/keiro/core"
)

// ErrUnknownMethod is returned by Compute for an unrecognized Method.
var ErrUnknownMethod = errors.New("mst: unknown method")

// Method selects the MST construction algorithm.
type Method int

const (
	MethodKruskal Method = iota
	MethodPrim
)

// Options configures an MST run.
type Options struct {
	// Directed makes Prim's frontier honor edge direction. Kruskal
	// ignores it: a spanning tree is an undirected notion.
	Directed bool

	// Source is the root Prim grows from. Compute defaults it to the
	// first node when empty.
	Source string
}

// Option mutates Options.
type Option func(*Options)

// WithDirected makes Prim's frontier honor edge direction.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithSource sets the root node Prim grows from.
func WithSource(id string) Option {
	return func(o *Options) { o.Source = id }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the constructed tree (or forest).
type Result struct {
	// Edges holds the committed edges in selection order.
	Edges []*core.Edge

	// TotalWeight is the summed weight of Edges.
	TotalWeight int64

	// Labels is Prim's per-node outcome: cumulative cost to join the tree
	// and a single backpointer toward the root. Nil for Kruskal.
	Labels core.Labels
}

// EdgeIDs returns the IDs of the committed edges in selection order.
func (r *Result) EdgeIDs() []string { return core.EdgeIDs(r.Edges) }

// Compute dispatches to the selected builder. MethodPrim roots the tree at
// Options.Source, defaulting to the graph's first node; an empty graph has
// no root and yields core.ErrNodeNotFound.
func Compute(g *core.Graph, method Method, opts ...Option) (*Result, error) {
	switch method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		o := buildOptions(opts)
		source := o.Source
		if source == "" {
			ids := g.NodeIDs()
			if len(ids) == 0 {
				return nil, core.ErrNodeNotFound
			}
			source = ids[0]
		}

		return Prim(g, source, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}
