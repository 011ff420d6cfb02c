// Package shortest implements single-source shortest-path labeling over a
// core.Graph: Dijkstra, A* and Bellman-Ford.
//
// All three follow the same pattern (assign every node a distance label
// and a set of backpointers, relax edges until stable, then reconstruct
// paths by walking the backpointers) and differ only in how the next
// relaxation is chosen:
//
//   - Dijkstra and A* share one greedy runner that repeatedly finalizes
//     the unvisited node with the smallest label. A* additionally folds a
//     heuristic estimate into the label and stops as soon as the target is
//     finalized; with a nil heuristic it degenerates to Dijkstra plus the
//     early stop.
//   - Bellman-Ford sweeps every edge up to |V|−1 times, tolerating
//     negative weights, and reports ErrNegativeCycle when relaxation
//     would still improve a label after that.
//
// Equal-cost alternatives are preserved: a relaxation that matches the
// recorded distance appends a predecessor instead of replacing it, so path
// reconstruction yields every tied-optimal route. Ties in "smallest label"
// go to the node inserted into the graph first, which keeps reruns
// byte-for-byte reproducible.
package shortest
