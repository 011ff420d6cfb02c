// Package mst builds minimum spanning trees with Kruskal's or Prim's
// algorithm.
//
// Kruskal sorts the edge list ascending by weight and commits each edge
// unless it would close a cycle, which is checked in near-constant time
// with a disjoint-set over the node IDs. Every edge is examined, so a
// disconnected graph quietly yields a spanning forest instead of an error.
//
// Prim grows a tree outward from a chosen root: each round picks the
// cheapest edge with exactly one endpoint inside the tree and pulls the
// other endpoint in. It stops early, also quietly, when no frontier edge
// remains; nodes in other components are simply left out.
//
// Ties are always resolved by taking the first candidate in edge insertion
// order, so both builders are deterministic across reruns.
package mst
