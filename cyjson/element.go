package cyjson

import (
	"errors"

	"github.com/google/uuid"
)

// ErrUnknownFormat is returned by Load for a file extension it cannot map
// to a decoder.
var ErrUnknownFormat = errors.New("cyjson: unknown fixture format")

const (
	groupNodes = "nodes"
	groupEdges = "edges"
)

// Element is one entry of a cytoscape.js element list.
type Element struct {
	Group    string      `json:"group,omitempty" yaml:"group,omitempty"`
	Data     ElementData `json:"data" yaml:"data"`
	Position *Point      `json:"position,omitempty" yaml:"position,omitempty"`
}

// ElementData is the payload of an element. Source and Target are set on
// edges only. Weight is a pointer so "absent" (default 1) and "explicit 0"
// (impassable) stay distinguishable.
type ElementData struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Weight *int64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Point is a node's 2D position.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// isEdge classifies an element: an explicit group tag wins, otherwise
// having both endpoints makes it an edge.
func (e *Element) isEdge() bool {
	switch e.Group {
	case groupEdges:
		return true
	case groupNodes:
		return false
	}

	return e.Data.Source != "" && e.Data.Target != ""
}

// weight returns the edge weight, defaulting to 1 when absent.
func (e *Element) weight() int64 {
	if e.Data.Weight == nil {
		return 1
	}

	return *e.Data.Weight
}

// Options configures decoding.
type Options struct {
	// GenerateIDs assigns a random ID to elements lacking one instead of
	// dropping them.
	GenerateIDs bool
}

// Option mutates Options.
type Option func(*Options)

// WithGeneratedIDs assigns a fresh UUID to any element missing an ID.
func WithGeneratedIDs() Option {
	return func(o *Options) { o.GenerateIDs = true }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func newID() string { return uuid.NewString() }
