// Package unionfind provides disjoint-set (union-find) structures with
// union by size and path compression.
//
// Two variants are offered:
//
//   - UnionFind tracks a fixed universe of integer elements 0..n-1. It is
//     the compact form used when elements are already dense indexes.
//   - IDUnionFind tracks string-identified elements and grows lazily,
//     which is the natural fit for graph node IDs (Kruskal's cycle check
//     uses it directly).
//
// Both run Find and Union in effectively constant amortized time.
package unionfind
