package traverse

// Options configures a traversal run.
type Options struct {
	// Directed restricts edges to source→target orientation.
	Directed bool

	// Target stops the walk as soon as this node is discovered. Empty
	// means exhaustive traversal.
	Target string
}

// Option mutates Options.
type Option func(*Options)

// WithDirected makes the walk honor edge direction.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithTarget stops the walk once id is discovered.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result captures one traversal run.
type Result struct {
	// Start is the node the walk began at.
	Start string

	// Steps lists the [from, to] hops in the order nodes were expanded.
	// The start node itself produces no step.
	Steps [][2]string

	// Parent maps each discovered node to the node it was discovered from.
	// The start node has no entry.
	Parent map[string]string

	// Visited holds every node discovered by the walk.
	Visited map[string]bool

	// Reached reports whether the walk was stopped by finding the target.
	Reached bool
}

// PathTo reconstructs the discovery path from the start node to id by
// walking Parent backwards. The second return is false when id was never
// discovered.
func (r *Result) PathTo(id string) ([]string, bool) {
	if !r.Visited[id] {
		return nil, false
	}

	path := []string{id}
	for id != r.Start {
		id = r.Parent[id]
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
