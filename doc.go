// Package keiro is a compact, deterministic playground for classical
// graph algorithms over a cytoscape.js-style element model.
//
// 🚀 What is keiro?
//
//	A small, readable library that brings together:
//		• Core primitives: nodes & edges built from flat element sequences
//		• Traversals: DFS, BFS, undirected cycle detection
//		• Shortest paths: Dijkstra, A* (scaled Euclidean heuristic), Bellman-Ford
//		• Minimum spanning trees: Kruskal, Prim
//		• Flow algorithms: Ford-Fulkerson over an explicit residual network
//		• Disjoint sets: index-based and string-keyed Union-Find
//		• I/O: JSON/YAML element loading, adjacency-matrix import, export
//
// ✨ Why keiro?
//
//   - Deterministic by contract: elements keep insertion order, and every
//     "first minimum" tie-break scans in that order, so identical inputs
//     always produce identical outputs
//   - Honest answers: shortest-path results keep ALL equal-cost paths,
//     not an arbitrary one
//   - Per-call directedness: the same graph answers directed and
//     undirected queries without rebuilding
//   - Explicit errors: sentinel errors on every failure path, no panics
//
// The module is organized into focused subpackages:
//
//	core/      — Graph, Node, Edge, the Labels side-table, path reconstruction
//	traverse/  — DFS, BFS and cycle detection over one shared walker
//	shortest/  — Dijkstra, A*, Bellman-Ford on a unified labeling engine
//	mst/       — Kruskal and Prim behind a single Compute dispatcher
//	flow/      — residual network construction + Ford-Fulkerson max flow
//	unionfind/ — the disjoint-set structures backing Kruskal
//	cyjson/    — element (de)serialization: JSON, YAML, adjacency matrices
//	cmd/keiro/ — the command-line front end
//
// Quick ASCII example:
//
//	    s───A
//	    │   │
//	    B───D───t
//
//	Load it from an element file, then ask for the cheapest s→t route,
//	a spanning tree, or the maximum s→t flow — each in one call.
//
//	go get github.com/keiro-dev/keiro
package keiro
