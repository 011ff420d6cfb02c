// Package core defines the central Graph, Node, and Edge types shared by
// every algorithm package, plus the per-run label side-table used by the
// single-source labeling algorithms.
//
// A Graph is built from a flat sequence of elements (the cytoscape.js
// schema consumed by the cyjson loader): nodes carry an id and an optional
// 2D position, edges carry an id, an ordered (source, target) pair and a
// weight. Directedness is a per-call flag on queries, not a property of
// the graph; undirected mode treats every edge as traversable both ways.
//
// Nodes and edges are stored in insertion order, and every "pick the first
// minimum" tie-break in the algorithm packages scans in that order. This
// is the documented deterministic tie-break for the whole module.
//
// Errors:
//
//	ErrEmptyID      - node or edge ID is the empty string.
//	ErrDuplicateID  - element ID already present in the graph.
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrInvalidEdge  - edge references a node ID absent from the node set.
package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyID indicates an element was given an empty ID.
	ErrEmptyID = errors.New("core: element ID is empty")

	// ErrDuplicateID indicates an element ID is already taken.
	ErrDuplicateID = errors.New("core: duplicate element ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates an edge references a node ID that is not
	// present in the graph. Detected at construction time, never at run time.
	ErrInvalidEdge = errors.New("core: edge references missing node")
)

// Position is a 2D coordinate attached to a node, used by heuristic
// distance estimates. Nodes without a position are treated as sitting at
// the origin.
type Position struct {
	X float64
	Y float64
}

// Node represents a vertex element.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Position is the optional 2D placement of the node. Nil when absent.
	Position *Position
}

// Edge represents a connection element between two nodes.
//
// Weight 0 marks the edge impassable: it is excluded from adjacency.
// The Tracked/Current/Flow/Residual/Pair fields are only populated on
// residual networks built by the flow package; ordinary graphs leave
// them at their zero values (Tracked == false means Current is ignored).
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// Source and Target are the endpoint node IDs. The pair is ordered;
	// undirected queries consider both orientations.
	Source string
	Target string

	// Weight is the cost or capacity of the edge. Input without a weight
	// defaults to 1; weight 0 means "impassable".
	Weight int64

	// Flow is the flow currently assigned by a max-flow run.
	Flow int64

	// Current is the remaining (residual) capacity. Only meaningful when
	// Tracked is true; Current 0 then masks the edge from adjacency.
	Current int64

	// Tracked reports whether Current is live on this edge.
	Tracked bool

	// Residual marks the reverse bookkeeping edge of a forward/reverse
	// pair in a residual network.
	Residual bool

	// Pair is the ID of the cross-linked counterpart edge in a residual
	// network (forward ↔ reverse).
	Pair string
}

// Traversable reports whether the edge can be walked at all: weight is
// non-zero and, when residual capacity is tracked, capacity is non-zero.
func (e *Edge) Traversable() bool {
	return e.Weight != 0 && (!e.Tracked || e.Current != 0)
}

// NodeOption configures a node as it is added.
type NodeOption func(*Node)

// WithPosition attaches a 2D position to the node.
func WithPosition(x, y float64) NodeOption {
	return func(n *Node) { n.Position = &Position{X: x, Y: y} }
}

// EdgeOption configures an edge as it is added.
type EdgeOption func(*Edge)

// WithCurrent sets the tracked residual capacity of the edge.
func WithCurrent(c int64) EdgeOption {
	return func(e *Edge) {
		e.Tracked = true
		e.Current = c
	}
}

// WithPair cross-links the edge to its forward/reverse counterpart.
func WithPair(id string) EdgeOption {
	return func(e *Edge) { e.Pair = id }
}

// WithResidual marks the edge as the reverse half of a residual pair.
func WithResidual() EdgeOption {
	return func(e *Edge) { e.Residual = true }
}

// Graph is the in-memory element store. It preserves insertion order of
// nodes and edges; all queries iterate in that order.
//
// Graph is not safe for concurrent mutation. Every algorithm run owns its
// own Labels side-table, so sequential runs of different algorithms over
// one graph never interfere.
type Graph struct {
	nodes []*Node
	edges []*Edge

	nodeIdx map[string]int // node ID → index into nodes
	edgeIdx map[string]int // edge ID → index into edges
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodeIdx: make(map[string]int),
		edgeIdx: make(map[string]int),
	}
}

// AddNode appends a node with the given ID.
// Returns ErrEmptyID or ErrDuplicateID on invalid input.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := g.nodeIdx[id]; ok {
		return ErrDuplicateID
	}
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}
	g.nodeIdx[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// AddEdge appends an edge from source to target with the given weight.
// Both endpoints must already exist; otherwise ErrInvalidEdge is returned.
// Edge IDs share a namespace with other edges only (a node and an edge may
// carry the same ID, as in the element schema).
func (g *Graph) AddEdge(id, source, target string, weight int64, opts ...EdgeOption) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, ok := g.edgeIdx[id]; ok {
		return ErrDuplicateID
	}
	if !g.HasNode(source) || !g.HasNode(target) {
		return ErrInvalidEdge
	}
	e := &Edge{ID: id, Source: source, Target: target, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	g.edgeIdx[id] = len(g.edges)
	g.edges = append(g.edges, e)

	return nil
}
