// Package traverse implements iterative worklist traversal (DFS and BFS)
// and DFS-based cycle detection over a core.Graph.
//
// Both orders share one walker: a worklist of frontier node IDs, a visited
// set, and a single discovery backpointer per node. Popping from the end
// of the worklist yields depth-first order, popping from the front yields
// breadth-first order; nothing else differs.
//
// When a target is given the walk stops the moment the target shows up
// among the current node's neighbors, even mid-scan, so a hit terminates
// without exhausting the frontier.
//
// Edges with weight 0 are impassable, and edges with tracked capacity 0
// are masked the same way; running a directed DFS over a residual network
// therefore only follows edges with remaining capacity, which is exactly
// how the flow package finds augmenting paths.
package traverse
