package flow

import (
	"errors"

	"github.com/keiro-dev/keiro/core"
)

var (
	// ErrNoCapacity reports an augmenting path hop whose edge has no
	// remaining capacity; the residual bookkeeping has been corrupted.
	ErrNoCapacity = errors.New("flow: augmenting edge has no capacity")

	// ErrIterationLimit reports that augmentation did not terminate
	// within the configured number of rounds.
	ErrIterationLimit = errors.New("flow: iteration limit exceeded")

	// ErrParallelEdges reports two input edges sharing the same ordered
	// (source, target) pair; the caller must pre-merge them.
	ErrParallelEdges = errors.New("flow: parallel edges between node pair")
)

// DefaultMaxIterations bounds the number of augmentation rounds. Plain
// Ford-Fulkerson on adversarial capacities can augment by tiny amounts
// indefinitely, so the loop is capped rather than trusted.
const DefaultMaxIterations = 200

// residualPrefix derives a reverse edge's ID from its forward partner.
const residualPrefix = "_residual_"

// Options configures a max-flow run.
type Options struct {
	// MaxIterations caps augmentation rounds. Zero means
	// DefaultMaxIterations.
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIterations overrides the augmentation round cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}

	return o
}

// Result is the outcome of a max-flow run.
type Result struct {
	// Network is the residual network carrying the final flow
	// assignment; the input graph is untouched.
	Network *core.Graph

	// Value is the total flow pushed out of the source.
	Value int64

	// Iterations counts the augmentation rounds performed.
	Iterations int
}

// Flows returns edge ID → assigned flow for every original (non-residual)
// edge carrying a positive amount.
func (r *Result) Flows() map[string]int64 {
	out := make(map[string]int64)
	for _, e := range r.Network.Edges() {
		if !e.Residual && e.Flow > 0 {
			out[e.ID] = e.Flow
		}
	}

	return out
}
